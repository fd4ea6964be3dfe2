// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/rhizome-lab/navforge/pkg/registry/repositoryhost"
	"k8s.io/klog/v2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

// Interface binds documentation roots to the repository hosts serving them
//
//counterfeiter:generate . Interface
type Interface interface {
	// Tree returns the documentation tree rooted at root
	Tree(root string) (Tree, error)
	// LogRateLimits logs rate limit and remaining API calls for all repository host backends
	LogRateLimits(ctx context.Context)
}

// Tree is a documentation root served by a repository host.
// Paths passed to its methods are relative to the root.
//
//counterfeiter:generate . Tree
type Tree interface {
	// Root returns the documentation root of the tree
	Root() string
	// Exists reports whether dir is present in the tree
	Exists(ctx context.Context, dir string) (bool, error)
	// List returns the entry names of dir
	List(ctx context.Context, dir string) ([]string, error)
	// Read returns the content of file
	Read(ctx context.Context, file string) ([]byte, error)
}

type registry struct {
	repoHosts []repositoryhost.Interface
}

// NewRegistry creates Registry object, optionally loading it with repository hosts if provided
func NewRegistry(repoHosts ...repositoryhost.Interface) Interface {
	return &registry{repoHosts: repoHosts}
}

func (r *registry) Tree(root string) (Tree, error) {
	for _, h := range r.repoHosts {
		if h.Accept(root) {
			klog.V(6).Infof("%s is served by %s\n", root, h.Name())
			return &tree{host: h, root: root}, nil
		}
	}
	return nil, fmt.Errorf("no suitable repository host for %s", root)
}

func (r *registry) LogRateLimits(ctx context.Context) {
	for _, repoHost := range r.repoHosts {
		l, rr, rt, err := repoHost.GetRateLimit(ctx)
		if err != nil && err.Error() != "not implemented" {
			klog.Warningf("Error getting RateLimit for %s: %v\n", repoHost.Name(), err)
		} else if l > 0 && rr > 0 {
			klog.Infof("%s RateLimit: %d requests per hour, Remaining: %d, Reset after: %s\n", repoHost.Name(), l, rr, time.Until(rt).Round(time.Second))
		}
	}
}

type tree struct {
	host repositoryhost.Interface
	root string
}

func (t *tree) Root() string {
	return t.root
}

func (t *tree) Exists(ctx context.Context, dir string) (bool, error) {
	return t.host.Exists(ctx, t.root, dir)
}

func (t *tree) List(ctx context.Context, dir string) ([]string, error) {
	return t.host.List(ctx, t.root, dir)
}

func (t *tree) Read(ctx context.Context, file string) ([]byte, error) {
	return t.host.Read(ctx, t.root, file)
}
