// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/rhizome-lab/navforge/pkg/sidebar"
	"k8s.io/klog/v2"
)

// EntryDeriver derives navigation entries for a directory of the documentation root
type EntryDeriver interface {
	Entries(ctx context.Context, directory string) ([]sidebar.NavigationEntry, error)
}

// Resolve returns a copy of s where every autogenerated sidebar group holds
// the entries derived for its directory, after its static items.
// s itself is left untouched.
func Resolve(ctx context.Context, s *Site, deriver EntryDeriver) (*Site, error) {
	resolved := s.DeepCopy()
	var errs *multierror.Error
	prefixes := make([]string, 0, len(resolved.ThemeConfig.Sidebar))
	for prefix := range resolved.ThemeConfig.Sidebar {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		items, err := resolveItems(ctx, resolved.ThemeConfig.Sidebar[prefix], deriver)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("sidebar %q: %w", prefix, err))
			continue
		}
		resolved.ThemeConfig.Sidebar[prefix] = items
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return resolved, nil
}

func resolveItems(ctx context.Context, items []SidebarItem, deriver EntryDeriver) ([]SidebarItem, error) {
	for i := range items {
		item := &items[i]
		if len(item.Items) > 0 {
			children, err := resolveItems(ctx, item.Items, deriver)
			if err != nil {
				return nil, err
			}
			item.Items = children
		}
		if item.Autogenerate == "" {
			continue
		}
		entries, err := deriver.Entries(ctx, item.Autogenerate)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", item.Text, err)
		}
		klog.V(2).Infof("%s: %d entries derived from %s\n", item.Text, len(entries), item.Autogenerate)
		if item.Items == nil {
			item.Items = make([]SidebarItem, 0, len(entries))
		}
		for _, e := range entries {
			item.Items = append(item.Items, SidebarItem{Text: e.Text, Link: e.Link})
		}
		item.Autogenerate = ""
	}
	return items, nil
}
