// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"github.com/hashicorp/go-multierror"
	"github.com/rhizome-lab/navforge/pkg/site"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate", func() {
	var s *site.Site

	BeforeEach(func() {
		s = &site.Site{
			Title: "Frond",
			Base:  "/frond/",
			ThemeConfig: site.ThemeConfig{
				Nav: []site.NavItem{{Text: "Design", Link: "/design/"}},
				Sidebar: map[string][]site.SidebarItem{
					"/design/": {{Text: "Design", Autogenerate: "design"}},
				},
			},
		}
	})

	It("accepts a valid site", func() {
		Expect(s.Validate()).To(Succeed())
	})

	It("reports every problem", func() {
		s.Title = " "
		s.Base = "frond"
		s.Plugins = []string{"katex"}
		s.ThemeConfig.Nav = append(s.ThemeConfig.Nav, site.NavItem{Text: "Guide"})
		s.ThemeConfig.Sidebar["design"] = []site.SidebarItem{{Link: "/design/"}, {Text: "Empty"}}
		s.ThemeConfig.SocialLinks = []site.SocialLink{{Icon: "github"}}
		s.ThemeConfig.Search = &site.Search{Provider: "lunr"}
		s.ThemeConfig.EditLink = &site.EditLink{Pattern: "https://github.com/rhizome-lab/frond/edit/master/docs"}
		err := s.Validate()
		Expect(err).To(HaveOccurred())
		merr, ok := err.(*multierror.Error)
		Expect(ok).To(BeTrue())
		Expect(merr.Errors).To(HaveLen(10))
		Expect(err.Error()).To(ContainSubstring("title must be set"))
		Expect(err.Error()).To(ContainSubstring(`base "frond" must start and end with /`))
		Expect(err.Error()).To(ContainSubstring(`unknown plugin "katex"`))
		Expect(err.Error()).To(ContainSubstring("nav item 1 must have text and link"))
		Expect(err.Error()).To(ContainSubstring(`sidebar "design" must start with /`))
		Expect(err.Error()).To(ContainSubstring(`sidebar "design" item 0 must have text`))
		Expect(err.Error()).To(ContainSubstring(`sidebar "design" item 1 must have a link, items or autogenerate`))
		Expect(err.Error()).To(ContainSubstring("social link 0 must have icon and link"))
		Expect(err.Error()).To(ContainSubstring(`search provider "lunr"`))
		Expect(err.Error()).To(ContainSubstring("has no :path placeholder"))
	})

	DescribeTable("autogenerate directories",
		func(dir string, valid bool) {
			s.ThemeConfig.Sidebar["/design/"][0].Autogenerate = dir
			if valid {
				Expect(s.Validate()).To(Succeed())
			} else {
				Expect(s.Validate()).To(MatchError(ContainSubstring("must be a clean path relative to the documentation root")))
			}
		},
		Entry("plain", "design", true),
		Entry("nested", "design/internals", true),
		Entry("absolute", "/design", false),
		Entry("parent", "..", false),
		Entry("escaping", "../design", false),
		Entry("current", ".", false),
		Entry("unclean", "design/../guide", false),
		Entry("trailing slash", "design/", false),
	)

	It("accepts an explicitly empty group", func() {
		s.ThemeConfig.Sidebar["/guide/"] = []site.SidebarItem{{Text: "Guide", Items: []site.SidebarItem{}}}
		Expect(s.Validate()).To(Succeed())
	})
})
