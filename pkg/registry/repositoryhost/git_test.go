// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/rhizome-lab/navforge/pkg/git/gitfakes"
	"github.com/rhizome-lab/navforge/pkg/osfakes/osshim/osshimfakes"
	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Git", func() {
	const root = "https://github.com/rhizome-lab/frond/tree/main/docs"

	var (
		ctx        context.Context
		fakeGit    *gitfakes.FakeGit
		fakeRepo   *gitfakes.FakeRepository
		fakeWT     *gitfakes.FakeRepositoryWorktree
		os         *osshimfakes.FakeOs
		host       repositoryhost.Interface
		cloneDir   string
		namesByDir map[string][]string
	)

	BeforeEach(func() {
		ctx = context.Background()
		cloneDir = filepath.Join("cache", "git", "github.com", "rhizome-lab", "frond", "main")
		fakeWT = &gitfakes.FakeRepositoryWorktree{}
		fakeRepo = &gitfakes.FakeRepository{}
		fakeRepo.WorktreeReturns(fakeWT, nil)
		fakeRepo.ReferenceCalls(func(name plumbing.ReferenceName, _ bool) (*plumbing.Reference, error) {
			if name == plumbing.NewRemoteReferenceName(gogit.DefaultRemoteName, "main") {
				return plumbing.NewHashReference(name, plumbing.ZeroHash), nil
			}
			return nil, plumbing.ErrReferenceNotFound
		})
		fakeGit = &gitfakes.FakeGit{}
		fakeGit.PlainOpenReturns(nil, gogit.ErrRepositoryNotExists)
		fakeGit.PlainCloneContextReturns(fakeRepo, nil)

		namesByDir = map[string][]string{
			filepath.Join(cloneDir, "docs", "design"): {"beta.md", "alpha.md"},
		}
		os = &osshimfakes.FakeOs{}
		os.IsNotExistCalls(func(err error) bool {
			return errors.Is(err, fs.ErrNotExist)
		})
		os.IsDirCalls(func(path string) (bool, error) {
			if _, ok := namesByDir[path]; ok {
				return true, nil
			}
			return false, fs.ErrNotExist
		})
		os.ReadDirNamesCalls(func(path string) ([]string, error) {
			if names, ok := namesByDir[path]; ok {
				return names, nil
			}
			return nil, fs.ErrNotExist
		})
		host = repositoryhost.NewGit(fakeGit, os, "cache", []string{"github.com"}, map[string]string{"github.com": "s3cr3t"})
	})

	It("clones the repository once and lists from the worktree", func() {
		names, err := host.List(ctx, root, "design")
		Expect(err).NotTo(HaveOccurred())
		Expect(names).To(Equal([]string{"beta.md", "alpha.md"}))

		exists, err := host.Exists(ctx, root, "primitives")
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())

		Expect(fakeGit.PlainOpenCallCount()).To(Equal(1))
		Expect(fakeGit.PlainCloneContextCallCount()).To(Equal(1))
		_, path, isBare, opts := fakeGit.PlainCloneContextArgsForCall(0)
		Expect(path).To(Equal(cloneDir))
		Expect(isBare).To(BeFalse())
		Expect(opts.URL).To(Equal("https://github.com/rhizome-lab/frond"))
		Expect(opts.Auth).To(Equal(&http.BasicAuth{Username: "navforge", Password: "s3cr3t"}))
		Expect(fakeRepo.FetchContextCallCount()).To(Equal(0))
	})

	It("checks out the requested branch", func() {
		_, err := host.List(ctx, root, "design")
		Expect(err).NotTo(HaveOccurred())
		Expect(fakeWT.CheckoutCallCount()).To(Equal(1))
		Expect(fakeWT.CheckoutArgsForCall(0).Branch).To(Equal(plumbing.NewRemoteReferenceName("origin", "main")))
	})

	It("fetches an existing clone", func() {
		fakeGit.PlainOpenReturns(fakeRepo, nil)
		fakeRepo.FetchContextReturns(gogit.NoErrAlreadyUpToDate)
		_, err := host.List(ctx, root, "design")
		Expect(err).NotTo(HaveOccurred())
		Expect(fakeRepo.FetchContextCallCount()).To(Equal(1))
		Expect(fakeGit.PlainCloneContextCallCount()).To(Equal(0))
	})

	It("reports unknown refs as not found", func() {
		_, err := host.List(ctx, "https://github.com/rhizome-lab/frond/tree/nope/docs", "design")
		Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
	})

	It("reports missing repositories and remembers the failure", func() {
		fakeGit.PlainCloneContextReturns(nil, transport.ErrRepositoryNotFound)
		_, err := host.Exists(ctx, root, "design")
		Expect(err).To(Equal(repositoryhost.ErrResourceNotFound("https://github.com/rhizome-lab/frond")))
		_, err = host.Exists(ctx, root, "design")
		Expect(err).To(HaveOccurred())
		Expect(fakeGit.PlainCloneContextCallCount()).To(Equal(1))
	})

	It("accepts tree urls of its hosts only", func() {
		Expect(host.Accept(root)).To(BeTrue())
		Expect(host.Accept("https://gitlab.com/rhizome-lab/frond/tree/main/docs")).To(BeFalse())
		Expect(host.Accept("docs")).To(BeFalse())
	})
})
