// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"github.com/rhizome-lab/navforge/pkg/site"
	"k8s.io/utils/pointer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const frondManifest = `title: Frond
description: Composable primitives
base: /frond/
plugins: [mermaid]
docsRoot: {{ .docsRoot }}
themeConfig:
  nav:
    - text: Guide
      link: /guide/
    - text: Design
      link: /design/
  sidebar:
    /guide/:
      - text: Guide
        items:
          - text: Introduction
            link: /guide/
    /design/:
      - text: Design
        collapsed: false
        items:
          - text: Overview
            link: /design/
        autogenerate: design
  socialLinks:
    - icon: github
      link: https://github.com/rhizome-lab/frond
  search:
    provider: local
  editLink:
    pattern: https://github.com/rhizome-lab/frond/edit/master/docs/:path
    text: Edit this page on GitHub
`

var _ = Describe("Parse", func() {
	It("decodes a manifest with variables", func() {
		s, err := site.Parse([]byte(frondManifest), map[string]string{"docsRoot": "docs"})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Title).To(Equal("Frond"))
		Expect(s.Base).To(Equal("/frond/"))
		Expect(s.Plugins).To(Equal([]string{"mermaid"}))
		Expect(s.DocsRoot).To(Equal("docs"))
		Expect(s.ThemeConfig.Nav).To(Equal([]site.NavItem{{Text: "Guide", Link: "/guide/"}, {Text: "Design", Link: "/design/"}}))
		Expect(s.ThemeConfig.Sidebar).To(HaveKey("/design/"))
		Expect(s.ThemeConfig.Sidebar["/design/"]).To(Equal([]site.SidebarItem{{
			Text:         "Design",
			Collapsed:    pointer.BoolPtr(false),
			Items:        []site.SidebarItem{{Text: "Overview", Link: "/design/"}},
			Autogenerate: "design",
		}}))
		Expect(s.ThemeConfig.SocialLinks).To(Equal([]site.SocialLink{{Icon: "github", Link: "https://github.com/rhizome-lab/frond"}}))
		Expect(s.ThemeConfig.Search).To(Equal(&site.Search{Provider: "local"}))
		Expect(s.ThemeConfig.EditLink.Pattern).To(HaveSuffix("/docs/:path"))
		Expect(s.Validate()).To(Succeed())
	})

	It("fails on a missing variable", func() {
		_, err := site.Parse([]byte(frondManifest), nil)
		Expect(err).To(MatchError(ContainSubstring("applying manifest variables")))
	})

	It("rejects unknown fields", func() {
		_, err := site.Parse([]byte("title: Frond\nlogo: frond.svg\n"), nil)
		Expect(err).To(MatchError(ContainSubstring("field logo not found")))
	})

	It("rejects an empty manifest", func() {
		_, err := site.Parse([]byte(""), nil)
		Expect(err).To(MatchError("manifest is empty"))
	})
})
