// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown_test

import (
	"context"
	"errors"

	"github.com/rhizome-lab/navforge/pkg/markdown"
	"github.com/rhizome-lab/navforge/pkg/registry/registryfakes"
	"github.com/rhizome-lab/navforge/pkg/sidebar"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Frontmatter", func() {
	Describe("#FrontmatterTitle", func() {
		It("returns the title", func() {
			title, ok, err := markdown.FrontmatterTitle([]byte("---\ntitle: WFC Internals\nweight: 2\n---\n\n# Wave Function Collapse\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(title).To(Equal("WFC Internals"))
		})

		It("reports documents without frontmatter", func() {
			_, ok, err := markdown.FrontmatterTitle([]byte("# State Machines\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("ignores blank and non string titles", func() {
			_, ok, err := markdown.FrontmatterTitle([]byte("---\ntitle: \"  \"\n---\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			_, ok, err = markdown.FrontmatterTitle([]byte("---\ntitle: [a, b]\n---\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("fails on malformed frontmatter", func() {
			_, _, err := markdown.FrontmatterTitle([]byte("---\ntitle: [unclosed\n---\n"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Titles", func() {
		var (
			ctx  context.Context
			tree *registryfakes.FakeTree
			ts   sidebar.TitleSource
		)

		BeforeEach(func() {
			ctx = context.Background()
			tree = &registryfakes.FakeTree{}
			ts = &markdown.Titles{Reader: tree}
		})

		It("reads the document relative to its directory", func() {
			tree.ReadReturns([]byte("---\ntitle: Camera Rigs\n---\n"), nil)
			title, ok, err := ts.Title(ctx, "primitives", "camera-controllers.md")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(title).To(Equal("Camera Rigs"))
			_, file := tree.ReadArgsForCall(0)
			Expect(file).To(Equal("primitives/camera-controllers.md"))
		})

		It("propagates read errors", func() {
			tree.ReadReturns(nil, errors.New("boom"))
			_, _, err := ts.Title(ctx, "primitives", "wfc.md")
			Expect(err).To(MatchError("boom"))
		})
	})
})
