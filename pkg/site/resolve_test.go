// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site_test

import (
	"context"
	"errors"

	"github.com/rhizome-lab/navforge/pkg/sidebar"
	"github.com/rhizome-lab/navforge/pkg/sidebar/sidebarfakes"
	"github.com/rhizome-lab/navforge/pkg/site"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolve", func() {
	var (
		ctx      context.Context
		lister   *sidebarfakes.FakeLister
		s        *site.Site
		resolved *site.Site
		err      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		lister = &sidebarfakes.FakeLister{}
		lister.ExistsCalls(func(_ context.Context, dir string) (bool, error) {
			return dir != "missing", nil
		})
		lister.ListCalls(func(_ context.Context, dir string) ([]string, error) {
			switch dir {
			case "design":
				return []string{"index.md", "wave-function-collapse.md", "state-machines.md"}, nil
			case "guide/primitives":
				return []string{"grid.md"}, nil
			}
			return []string{}, nil
		})
		s = &site.Site{
			Title: "Frond",
			ThemeConfig: site.ThemeConfig{
				Sidebar: map[string][]site.SidebarItem{
					"/design/": {{
						Text:         "Design",
						Items:        []site.SidebarItem{{Text: "Overview", Link: "/design/"}},
						Autogenerate: "design",
					}},
					"/guide/": {{
						Text: "Guide",
						Items: []site.SidebarItem{{
							Text:         "Primitives",
							Autogenerate: "guide/primitives",
						}},
					}, {
						Text:         "Drafts",
						Autogenerate: "missing",
					}},
				},
			},
		}
	})

	JustBeforeEach(func() {
		resolved, err = site.Resolve(ctx, s, sidebar.NewDeriver(lister))
	})

	It("appends derived entries after static items", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(resolved.ThemeConfig.Sidebar["/design/"]).To(Equal([]site.SidebarItem{{
			Text: "Design",
			Items: []site.SidebarItem{
				{Text: "Overview", Link: "/design/"},
				{Text: "Wave Function Collapse", Link: "/design/wave-function-collapse"},
				{Text: "State Machines", Link: "/design/state-machines"},
			},
		}}))
	})

	It("resolves nested groups", func() {
		Expect(err).NotTo(HaveOccurred())
		guide := resolved.ThemeConfig.Sidebar["/guide/"]
		Expect(guide[0].Items).To(Equal([]site.SidebarItem{{
			Text:  "Primitives",
			Items: []site.SidebarItem{{Text: "Grid", Link: "/guide/primitives/grid"}},
		}}))
	})

	It("keeps an empty group for a missing directory", func() {
		Expect(err).NotTo(HaveOccurred())
		drafts := resolved.ThemeConfig.Sidebar["/guide/"][1]
		Expect(drafts.Items).NotTo(BeNil())
		Expect(drafts.Items).To(BeEmpty())
		Expect(drafts.Autogenerate).To(BeEmpty())
	})

	It("does not mutate the input", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(s.ThemeConfig.Sidebar["/design/"][0].Items).To(HaveLen(1))
		Expect(s.ThemeConfig.Sidebar["/design/"][0].Autogenerate).To(Equal("design"))
		Expect(s.ThemeConfig.Sidebar["/guide/"][1].Items).To(BeNil())
	})

	It("re-reads listings on every resolve", func() {
		Expect(err).NotTo(HaveOccurred())
		calls := lister.ListCallCount()
		again, err := site.Resolve(ctx, s, sidebar.NewDeriver(lister))
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(resolved))
		Expect(lister.ListCallCount()).To(Equal(2 * calls))
	})

	Context("listing fails", func() {
		BeforeEach(func() {
			lister.ListReturns(nil, errors.New("permission denied"))
			lister.ListCalls(nil)
		})

		It("propagates the error", func() {
			Expect(resolved).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("permission denied")))
			Expect(err).To(MatchError(ContainSubstring(`sidebar "/design/": group "Design"`)))
		})
	})
})
