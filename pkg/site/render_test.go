// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"github.com/rhizome-lab/navforge/pkg/site"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Render", func() {
	var s *site.Site

	BeforeEach(func() {
		s = &site.Site{
			Title:    "Frond",
			Base:     "/frond/",
			Plugins:  []string{site.PluginMermaid},
			DocsRoot: "docs",
			ThemeConfig: site.ThemeConfig{
				Sidebar: map[string][]site.SidebarItem{
					"/design/": {{
						Text:  "Design",
						Items: []site.SidebarItem{{Text: "Foo Bar", Link: "/design/foo-bar"}},
					}, {
						Text:  "Drafts",
						Items: []site.SidebarItem{},
					}},
				},
				Search: &site.Search{Provider: "local"},
			},
		}
	})

	It("renders JSON", func() {
		out, err := site.Render(s, site.JSON)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`{
  "title": "Frond",
  "base": "/frond/",
  "themeConfig": {
    "sidebar": {
      "/design/": [
        {
          "text": "Design",
          "items": [
            {
              "text": "Foo Bar",
              "link": "/design/foo-bar"
            }
          ]
        },
        {
          "text": "Drafts",
          "items": []
        }
      ]
    },
    "search": {
      "provider": "local"
    }
  },
  "vite": {
    "optimizeDeps": {
      "include": [
        "mermaid"
      ]
    }
  },
  "mermaid": {}
}
`))
	})

	It("renders YAML", func() {
		out, err := site.Render(s, site.YAML)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal(`title: Frond
base: /frond/
themeConfig:
  sidebar:
    /design/:
      - text: Design
        items:
          - text: Foo Bar
            link: /design/foo-bar
      - text: Drafts
        items: []
  search:
    provider: local
vite:
  optimizeDeps:
    include:
      - mermaid
mermaid: {}
`))
	})

	It("omits plugin blocks when no plugin is enabled", func() {
		s.Plugins = nil
		out, err := site.Render(s, site.JSON)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).NotTo(ContainSubstring("vite"))
		Expect(string(out)).NotTo(ContainSubstring("mermaid"))
	})

	It("does not escape HTML characters", func() {
		s.ThemeConfig.Sidebar["/design/"][0].Items[0].Text = "Grids & Tiles"
		out, err := site.Render(s, site.JSON)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(ContainSubstring(`"text": "Grids & Tiles"`))
	})

	It("parses formats", func() {
		f, err := site.ParseFormat("yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(site.YAML))
		Expect(f.Extension()).To(Equal(".yaml"))
		_, err = site.ParseFormat("toml")
		Expect(err).To(MatchError(ContainSubstring(`unknown format "toml"`)))
	})
})
