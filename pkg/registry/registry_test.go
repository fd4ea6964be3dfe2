// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry_test

import (
	"context"
	"errors"
	"time"

	"github.com/rhizome-lab/navforge/pkg/registry"
	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost/repositoryhostfakes"
	"github.com/rhizome-lab/navforge/pkg/sidebar"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var (
		ctx    context.Context
		local  *repositoryhostfakes.FakeInterface
		remote *repositoryhostfakes.FakeInterface
		r      registry.Interface
	)

	BeforeEach(func() {
		ctx = context.Background()
		local = &repositoryhostfakes.FakeInterface{}
		local.NameReturns("local")
		local.AcceptCalls(func(root string) bool { return root == "docs" })
		local.ListReturns([]string{"a.md"}, nil)
		local.ExistsReturns(true, nil)
		local.ReadReturns([]byte("# A"), nil)
		remote = &repositoryhostfakes.FakeInterface{}
		remote.NameReturns("github.com")
		remote.AcceptReturns(true)
		r = registry.NewRegistry(local, remote)
	})

	Describe("#Tree", func() {
		It("binds the first accepting host", func() {
			tree, err := r.Tree("docs")
			Expect(err).NotTo(HaveOccurred())
			Expect(tree.Root()).To(Equal("docs"))

			names, err := tree.List(ctx, "design")
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"a.md"}))
			_, root, dir := local.ListArgsForCall(0)
			Expect(root).To(Equal("docs"))
			Expect(dir).To(Equal("design"))

			Expect(tree.Exists(ctx, "design")).To(BeTrue())
			Expect(tree.Read(ctx, "design/a.md")).To(Equal([]byte("# A")))
			Expect(remote.ListCallCount()).To(Equal(0))
		})

		It("falls through to later hosts", func() {
			_, err := r.Tree("https://github.com/rhizome-lab/frond")
			Expect(err).NotTo(HaveOccurred())
			Expect(remote.AcceptCallCount()).To(Equal(1))
		})

		It("fails when no host accepts the root", func() {
			r = registry.NewRegistry(local)
			_, err := r.Tree("ftp://example.org/docs")
			Expect(err).To(MatchError("no suitable repository host for ftp://example.org/docs"))
		})

		It("serves as a sidebar lister", func() {
			tree, err := r.Tree("docs")
			Expect(err).NotTo(HaveOccurred())
			var lister sidebar.Lister = tree
			entries, err := sidebar.NewDeriver(lister).Entries(ctx, "design")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]sidebar.NavigationEntry{{Text: "A", Link: "/design/a"}}))
		})
	})

	Describe("#LogRateLimits", func() {
		It("queries every host", func() {
			local.GetRateLimitReturns(0, 0, time.Time{}, errors.New("not implemented"))
			remote.GetRateLimitReturns(5000, 4999, time.Now().Add(time.Hour), nil)
			r.LogRateLimits(ctx)
			Expect(local.GetRateLimitCallCount()).To(Equal(1))
			Expect(remote.GetRateLimitCallCount()).To(Equal(1))
		})
	})
})
