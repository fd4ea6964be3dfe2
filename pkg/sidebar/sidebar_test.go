// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rhizome-lab/navforge/pkg/sidebar"
	"github.com/rhizome-lab/navforge/pkg/sidebar/sidebarfakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Deriver", func() {
	var (
		ctx     context.Context
		lister  *sidebarfakes.FakeLister
		deriver *sidebar.Deriver
		entries []sidebar.NavigationEntry
		err     error
	)

	BeforeEach(func() {
		ctx = context.Background()
		lister = &sidebarfakes.FakeLister{}
		lister.ExistsReturns(true, nil)
		deriver = sidebar.NewDeriver(lister)
	})

	JustBeforeEach(func() {
		entries, err = deriver.Entries(ctx, "design")
	})

	Context("directory does not exist", func() {
		BeforeEach(func() {
			lister.ExistsReturns(false, nil)
		})

		It("returns an empty sequence without listing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).NotTo(BeNil())
			Expect(entries).To(BeEmpty())
			Expect(lister.ListCallCount()).To(Equal(0))
		})
	})

	Context("directory disappears before it is listed", func() {
		BeforeEach(func() {
			lister.ListReturns(nil, fmt.Errorf("gone: %w", fs.ErrNotExist))
		})

		It("returns an empty sequence", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})

	Context("empty directory", func() {
		BeforeEach(func() {
			lister.ListReturns([]string{}, nil)
		})

		It("returns an empty sequence", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})

	Context("directory with only the index page", func() {
		BeforeEach(func() {
			lister.ListReturns([]string{"index.md"}, nil)
		})

		It("returns an empty sequence", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})

	Context("directory with a document and the index page", func() {
		BeforeEach(func() {
			lister.ListReturns([]string{"foo-bar.md", "index.md"}, nil)
		})

		It("returns exactly one entry", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]sidebar.NavigationEntry{
				{Text: "Foo Bar", Link: "/design/foo-bar"},
			}))
		})

		It("asks the lister about the requested directory", func() {
			_, dir := lister.ExistsArgsForCall(0)
			Expect(dir).To(Equal("design"))
			_, dir = lister.ListArgsForCall(0)
			Expect(dir).To(Equal("design"))
		})
	})

	Context("listing order", func() {
		BeforeEach(func() {
			lister.ListReturns([]string{"beta.md", "alpha.md"}, nil)
		})

		It("preserves the order of the listing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]sidebar.NavigationEntry{
				{Text: "Beta", Link: "/design/beta"},
				{Text: "Alpha", Link: "/design/alpha"},
			}))
		})
	})

	Context("non markdown files", func() {
		BeforeEach(func() {
			lister.ListReturns([]string{"notes.txt", "diagram.png", "README", "architecture.md", "draft.md.bak"}, nil)
		})

		It("ignores them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]sidebar.NavigationEntry{
				{Text: "Architecture", Link: "/design/architecture"},
			}))
		})
	})

	Context("unchanged directory", func() {
		BeforeEach(func() {
			lister.ListReturns([]string{"wave-function-collapse.md", "procgen.md"}, nil)
		})

		It("derives identical entries on every call and re-reads the listing", func() {
			Expect(err).NotTo(HaveOccurred())
			again, err := deriver.Entries(ctx, "design")
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(entries))
			Expect(lister.ListCallCount()).To(Equal(2))
			Expect(lister.ExistsCallCount()).To(Equal(2))
		})
	})

	Context("lister failures", func() {
		Context("on existence check", func() {
			BeforeEach(func() {
				lister.ExistsReturns(false, errors.New("permission denied"))
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(ContainSubstring("permission denied")))
				Expect(entries).To(BeNil())
			})
		})

		Context("on listing", func() {
			BeforeEach(func() {
				lister.ListReturns(nil, errors.New("rate limited"))
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(ContainSubstring("rate limited")))
			})
		})
	})

	Context("with a title source", func() {
		var titles *sidebarfakes.FakeTitleSource

		BeforeEach(func() {
			lister.ListReturns([]string{"wfc.md", "procgen.md"}, nil)
			titles = &sidebarfakes.FakeTitleSource{}
			titles.TitleCalls(func(_ context.Context, dir string, name string) (string, bool, error) {
				if name == "wfc.md" {
					return "Wave Function Collapse", true, nil
				}
				return "", false, nil
			})
			deriver = sidebar.NewDeriver(lister, sidebar.WithTitleSource(titles))
		})

		It("prefers provided titles and falls back to the filename", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]sidebar.NavigationEntry{
				{Text: "Wave Function Collapse", Link: "/design/wfc"},
				{Text: "Procgen", Link: "/design/procgen"},
			}))
			Expect(titles.TitleCallCount()).To(Equal(2))
		})

		Context("failing", func() {
			BeforeEach(func() {
				titles.TitleCalls(nil)
				titles.TitleReturns("", false, errors.New("malformed frontmatter"))
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(ContainSubstring("malformed frontmatter")))
			})
		})
	})
})

var _ = Describe("Link", func() {
	It("joins directory and base filename", func() {
		Expect(sidebar.Link("design", "foo")).To(Equal("/design/foo"))
		Expect(sidebar.Link("guide/advanced", "setup")).To(Equal("/guide/advanced/setup"))
	})
})
