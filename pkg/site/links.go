// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Exister checks the presence of documents under the documentation root
type Exister interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// ErrBrokenLink is reported for a site link without a document behind it
type ErrBrokenLink struct {
	Link   string
	Source string
}

func (e *ErrBrokenLink) Error() string {
	return fmt.Sprintf("%s links to %s which has no document", e.Source, e.Link)
}

// CheckLinks verifies that every root-relative link of the navigation bar and
// the sidebars points to a document under the documentation root.
// External links are not checked. Up to workers lookups run in parallel.
func CheckLinks(ctx context.Context, s *Site, docs Exister, workers int) error {
	type link struct {
		source string
		target string
	}
	var links []link
	for _, n := range s.ThemeConfig.Nav {
		links = append(links, link{fmt.Sprintf("nav %q", n.Text), n.Link})
	}
	prefixes := make([]string, 0, len(s.ThemeConfig.Sidebar))
	for prefix := range s.ThemeConfig.Sidebar {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		walkItems(s.ThemeConfig.Sidebar[prefix], func(item SidebarItem) {
			if item.Link != "" {
				links = append(links, link{fmt.Sprintf("sidebar %q item %q", prefix, item.Text), item.Link})
			}
		})
	}

	results := make([]error, len(links))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, l := range links {
		i, l := i, l
		g.Go(func() error {
			results[i] = checkLink(gctx, docs, l.source, l.target)
			return nil
		})
	}
	_ = g.Wait()

	var errs *multierror.Error
	for _, err := range results {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func checkLink(ctx context.Context, docs Exister, source string, link string) error {
	candidates := Documents(link)
	if candidates == nil {
		klog.V(6).Infof("skipping link check for %s\n", link)
		return nil
	}
	for _, c := range candidates {
		exists, err := docs.Exists(ctx, c)
		if err != nil {
			return fmt.Errorf("checking %s: %w", link, err)
		}
		if exists {
			return nil
		}
	}
	return &ErrBrokenLink{Link: link, Source: source}
}

// Documents returns the documents a root-relative site link may resolve to,
// in lookup order, or nil for links that are not root-relative.
// `/guide/setup` -> guide/setup.md, guide/setup/index.md; `/primitives/` -> primitives/index.md
func Documents(link string) []string {
	if !strings.HasPrefix(link, "/") || strings.HasPrefix(link, "//") {
		return nil
	}
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	p := strings.TrimPrefix(link, "/")
	switch {
	case p == "" || strings.HasSuffix(p, "/"):
		return []string{p + "index.md"}
	case strings.HasSuffix(p, ".md"):
		return []string{p}
	case strings.HasSuffix(p, ".html"):
		p = strings.TrimSuffix(p, ".html")
	}
	return []string{p + ".md", p + "/index.md"}
}

func walkItems(items []SidebarItem, fn func(SidebarItem)) {
	for _, item := range items {
		fn(item)
		walkItems(item.Items, fn)
	}
}
