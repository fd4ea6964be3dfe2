// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("URL", func() {
	var (
		r   *repositoryhost.URL
		err error
	)

	Describe("tree urls", func() {
		BeforeEach(func() {
			r, err = repositoryhost.NewResourceURL("https://github.com/rhizome-lab/frond/tree/master/docs/")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should build URL correctly", func() {
			Expect(r.GetHost()).To(Equal("github.com"))
			Expect(r.GetOwner()).To(Equal("rhizome-lab"))
			Expect(r.GetRepo()).To(Equal("frond"))
			Expect(r.GetRef()).To(Equal("master"))
			Expect(r.GetResourcePath()).To(Equal("docs"))
			Expect(r.String()).To(Equal("https://github.com/rhizome-lab/frond/tree/master/docs"))
			Expect(r.RepositoryURL()).To(Equal("https://github.com/rhizome-lab/frond"))
		})

		It("joins paths relative to the tree", func() {
			Expect(r.Join("design")).To(Equal("docs/design"))
			Expect(r.Join("design/wfc.md")).To(Equal("docs/design/wfc.md"))
			Expect(r.Join("")).To(Equal("docs"))
		})
	})

	Describe("tree url of the repository root", func() {
		It("has an empty resource path", func() {
			r, err = repositoryhost.NewResourceURL("https://github.enterprise.corp/team/site/tree/v1.2.0")
			Expect(err).NotTo(HaveOccurred())
			Expect(r.GetRef()).To(Equal("v1.2.0"))
			Expect(r.GetResourcePath()).To(Equal(""))
			Expect(r.Join("design")).To(Equal("design"))
		})
	})

	Describe("repository urls", func() {
		It("refer to the default branch", func() {
			r, err = repositoryhost.NewResourceURL("https://github.com/rhizome-lab/frond.git")
			Expect(err).NotTo(HaveOccurred())
			Expect(r.GetRepo()).To(Equal("frond"))
			Expect(r.GetRef()).To(Equal(""))
			Expect(r.String()).To(Equal("https://github.com/rhizome-lab/frond"))
		})
	})

	Describe("invalid urls", func() {
		It("rejects blob urls", func() {
			_, err = repositoryhost.NewResourceURL("https://github.com/rhizome-lab/frond/blob/master/docs/index.md")
			Expect(err).To(HaveOccurred())
		})

		It("rejects urls with query or fragment", func() {
			_, err = repositoryhost.NewResourceURL("https://github.com/rhizome-lab/frond/tree/master/docs?plain=1")
			Expect(err).To(HaveOccurred())
			_, err = repositoryhost.NewResourceURL("https://github.com/rhizome-lab/frond/tree/master/docs#top")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("#IsRemoteRoot", func() {
		It("tells urls from local paths", func() {
			Expect(repositoryhost.IsRemoteRoot("https://github.com/rhizome-lab/frond")).To(BeTrue())
			Expect(repositoryhost.IsRemoteRoot("docs")).To(BeFalse())
			Expect(repositoryhost.IsRemoteRoot("/srv/docs")).To(BeFalse())
			Expect(repositoryhost.IsRemoteRoot("C:\\docs")).To(BeFalse())
		})
	})
})
