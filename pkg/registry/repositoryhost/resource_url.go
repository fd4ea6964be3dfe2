// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	treeURL = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+)/tree/([^/]+)/?([^\?#]*)$`)
	repoURL = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/\?#]+?)(\.git)?/?$`)
)

// IsRemoteRoot checks if a documentation root is an URL rather than a local path
func IsRemoteRoot(root string) bool {
	u, err := url.Parse(root)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// URL is a documentation root inside a repository: a tree at a ref
type URL struct {
	host         string
	owner        string
	repo         string
	ref          string
	resourcePath string
}

// NewResourceURL parses https://<host>/<owner>/<repo>/tree/<ref>/<path> urls.
// A plain repository url refers to the root of the default branch and has an empty ref.
func NewResourceURL(resourceURL string) (*URL, error) {
	u, err := url.Parse(resourceURL)
	if err != nil {
		return nil, err
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("%s is not a repository tree URL", resourceURL)
	}
	if components := treeURL.FindStringSubmatch(resourceURL); components != nil {
		return &URL{
			host:         components[1],
			owner:        components[2],
			repo:         components[3],
			ref:          components[4],
			resourcePath: strings.TrimSuffix(components[5], "/"),
		}, nil
	}
	if components := repoURL.FindStringSubmatch(resourceURL); components != nil {
		return &URL{
			host:  components[1],
			owner: components[2],
			repo:  components[3],
		}, nil
	}
	return nil, fmt.Errorf("%s is not a repository tree URL", resourceURL)
}

// String returns the full url
func (r URL) String() string {
	if r.ref == "" {
		return r.RepositoryURL()
	}
	u := fmt.Sprintf("https://%s/%s/%s/tree/%s", r.host, r.owner, r.repo, r.ref)
	if r.resourcePath == "" {
		return u
	}
	return u + "/" + r.resourcePath
}

// RepositoryURL returns the clone url of the repository
func (r URL) RepositoryURL() string {
	return fmt.Sprintf("https://%s/%s/%s", r.host, r.owner, r.repo)
}

// Join returns the repository path of elem relative to the url tree
func (r URL) Join(elem string) string {
	return strings.TrimPrefix(path.Join(r.resourcePath, elem), "/")
}

// GetHost returns the host of the URL
func (r URL) GetHost() string {
	return r.host
}

// GetOwner returns the owner of the URL
func (r URL) GetOwner() string {
	return r.owner
}

// GetRepo returns the repository of the URL
func (r URL) GetRepo() string {
	return r.repo
}

// GetRef returns the reference of the URL, empty for the default branch
func (r URL) GetRef() string {
	return r.ref
}

// GetResourcePath returns the resource path of the URL
func (r URL) GetResourcePath() string {
	return r.resourcePath
}
