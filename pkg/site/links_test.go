// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/rhizome-lab/navforge/pkg/registry/registryfakes"
	"github.com/rhizome-lab/navforge/pkg/site"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/ginkgo/extensions/table"
)

var _ = Describe("Links", func() {
	DescribeTable("Documents",
		func(link string, want []string) {
			Expect(site.Documents(link)).To(Equal(want))
		},
		Entry("page", "/guide/setup", []string{"guide/setup.md", "guide/setup/index.md"}),
		Entry("directory", "/design/", []string{"design/index.md"}),
		Entry("root", "/", []string{"index.md"}),
		Entry("html", "/guide/setup.html", []string{"guide/setup.md", "guide/setup/index.md"}),
		Entry("markdown", "/guide/setup.md", []string{"guide/setup.md"}),
		Entry("anchor", "/guide/setup#install", []string{"guide/setup.md", "guide/setup/index.md"}),
		Entry("query", "/design/?tab=1", []string{"design/index.md"}),
		Entry("external", "https://github.com/rhizome-lab/frond", nil),
		Entry("protocol relative", "//github.com/rhizome-lab", nil),
		Entry("relative", "setup", nil),
	)

	Describe("CheckLinks", func() {
		var (
			ctx  context.Context
			docs *registryfakes.FakeTree
			s    *site.Site
		)

		BeforeEach(func() {
			ctx = context.Background()
			docs = &registryfakes.FakeTree{}
			docs.ExistsCalls(func(_ context.Context, p string) (bool, error) {
				switch p {
				case "design/index.md", "guide/setup/index.md", "design/wave-function-collapse.md":
					return true, nil
				}
				return false, nil
			})
			s = &site.Site{
				Title: "Frond",
				ThemeConfig: site.ThemeConfig{
					Nav: []site.NavItem{
						{Text: "Design", Link: "/design/"},
						{Text: "GitHub", Link: "https://github.com/rhizome-lab/frond"},
					},
					Sidebar: map[string][]site.SidebarItem{
						"/design/": {{
							Text: "Design",
							Items: []site.SidebarItem{
								{Text: "Setup", Link: "/guide/setup"},
								{Text: "Wave Function Collapse", Link: "/design/wave-function-collapse"},
							},
						}},
					},
				},
			}
		})

		It("accepts links backed by documents", func() {
			Expect(site.CheckLinks(ctx, s, docs, 2)).To(Succeed())
			Expect(docs.ExistsCallCount()).To(Equal(4))
		})

		It("collects broken links", func() {
			s.ThemeConfig.Nav = append(s.ThemeConfig.Nav, site.NavItem{Text: "Guide", Link: "/guide/"})
			s.ThemeConfig.Sidebar["/design/"][0].Items = append(s.ThemeConfig.Sidebar["/design/"][0].Items,
				site.SidebarItem{Text: "Grid", Link: "/design/grid"})
			err := site.CheckLinks(ctx, s, docs, 2)
			Expect(err).To(HaveOccurred())
			merr, ok := err.(*multierror.Error)
			Expect(ok).To(BeTrue())
			Expect(merr.Errors).To(HaveLen(2))
			var broken *site.ErrBrokenLink
			Expect(errors.As(merr.Errors[0], &broken)).To(BeTrue())
			Expect(broken.Link).To(Equal("/guide/"))
			Expect(merr.Errors[1].Error()).To(Equal(`sidebar "/design/" item "Grid" links to /design/grid which has no document`))
		})

		It("propagates lookup errors", func() {
			docs.ExistsCalls(nil)
			docs.ExistsReturns(false, errors.New("rate limited"))
			err := site.CheckLinks(ctx, s, docs, 2)
			Expect(err).To(MatchError(ContainSubstring("checking /design/: rate limited")))
		})
	})
})
