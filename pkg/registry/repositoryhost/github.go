// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v43/github"
	"k8s.io/klog/v2"
)

//counterfeiter:generate . RateLimitSource

// RateLimitSource is an interface needed for faking
type RateLimitSource interface {
	RateLimits(ctx context.Context) (*github.RateLimits, *github.Response, error)
}

//counterfeiter:generate . Repositories

// Repositories is an interface needed for faking
type Repositories interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

type ghc struct {
	hostName      string
	rateLimit     RateLimitSource
	repositories  Repositories
	acceptedHosts []string
}

// NewGHC creates a repository host reading documentation roots through the GitHub contents API
func NewGHC(hostName string, rateLimit RateLimitSource, repositories Repositories, acceptedHosts []string) Interface {
	return &ghc{
		hostName:      hostName,
		rateLimit:     rateLimit,
		repositories:  repositories,
		acceptedHosts: acceptedHosts,
	}
}

func (p *ghc) Accept(root string) bool {
	r, err := url.Parse(root)
	if err != nil || r.Scheme != "https" {
		return false
	}
	for _, h := range p.acceptedHosts {
		if h == r.Host {
			_, err := NewResourceURL(root)
			return err == nil
		}
	}
	return false
}

func (p *ghc) Exists(ctx context.Context, root string, dir string) (bool, error) {
	_, _, err := p.contents(ctx, root, dir)
	if err != nil {
		if _, ok := err.(ErrResourceNotFound); ok {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (p *ghc) List(ctx context.Context, root string, dir string) ([]string, error) {
	file, entries, err := p.contents(ctx, root, dir)
	if err != nil {
		return nil, err
	}
	if file != nil {
		return nil, fmt.Errorf("not a directory: %s", file.GetHTMLURL())
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.GetName())
	}
	klog.V(6).Infof("listed %d entries of %s/%s\n", len(names), root, dir)
	return names, nil
}

func (p *ghc) Read(ctx context.Context, root string, file string) ([]byte, error) {
	f, _, err := p.contents(ctx, root, file)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("not a file: %s/%s", root, file)
	}
	cnt, err := f.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding %s fails: %w", f.GetHTMLURL(), err)
	}
	return []byte(cnt), nil
}

func (p *ghc) contents(ctx context.Context, root string, elem string) (*github.RepositoryContent, []*github.RepositoryContent, error) {
	r, err := NewResourceURL(root)
	if err != nil {
		return nil, nil, err
	}
	var opts *github.RepositoryContentGetOptions
	if r.GetRef() != "" {
		opts = &github.RepositoryContentGetOptions{Ref: r.GetRef()}
	}
	repoPath := r.Join(elem)
	file, dir, resp, err := p.repositories.GetContents(ctx, r.GetOwner(), r.GetRepo(), repoPath, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil, ErrResourceNotFound(fmt.Sprintf("%s/%s", r.String(), elem))
		}
		return nil, nil, err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return nil, nil, fmt.Errorf("reading %s/%s fails with HTTP status: %d", r.String(), elem, resp.StatusCode)
	}
	return file, dir, nil
}

// Name returns host name
func (p *ghc) Name() string {
	return p.hostName
}

func (p *ghc) GetRateLimit(ctx context.Context) (int, int, time.Time, error) {
	r, _, err := p.rateLimit.RateLimits(ctx)
	if err != nil {
		return -1, -1, time.Now(), err
	}
	return r.Core.Limit, r.Core.Remaining, r.Core.Reset.Time, nil
}
