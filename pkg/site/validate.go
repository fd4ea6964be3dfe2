// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// PathPlaceholder is replaced by the page path in edit link patterns
	PathPlaceholder = ":path"
	// PluginMermaid enables mermaid diagrams
	PluginMermaid = "mermaid"
)

var searchProviders = []string{"local", "algolia"}

// Validate reports every problem of the site declaration at once
func (s *Site) Validate() error {
	var errs *multierror.Error
	if strings.TrimSpace(s.Title) == "" {
		errs = multierror.Append(errs, fmt.Errorf("title must be set"))
	}
	if s.Base != "" && (!strings.HasPrefix(s.Base, "/") || !strings.HasSuffix(s.Base, "/")) {
		errs = multierror.Append(errs, fmt.Errorf("base %q must start and end with /", s.Base))
	}
	for _, p := range s.Plugins {
		if p != PluginMermaid {
			errs = multierror.Append(errs, fmt.Errorf("unknown plugin %q", p))
		}
	}
	tc := s.ThemeConfig
	for i, n := range tc.Nav {
		if n.Text == "" || n.Link == "" {
			errs = multierror.Append(errs, fmt.Errorf("nav item %d must have text and link", i))
		}
	}
	prefixes := make([]string, 0, len(tc.Sidebar))
	for prefix := range tc.Sidebar {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		if !strings.HasPrefix(prefix, "/") {
			errs = multierror.Append(errs, fmt.Errorf("sidebar %q must start with /", prefix))
		}
		errs = validateItems(errs, fmt.Sprintf("sidebar %q", prefix), tc.Sidebar[prefix])
	}
	for i, l := range tc.SocialLinks {
		if l.Icon == "" || l.Link == "" {
			errs = multierror.Append(errs, fmt.Errorf("social link %d must have icon and link", i))
		}
	}
	if tc.Search != nil && !contains(searchProviders, tc.Search.Provider) {
		errs = multierror.Append(errs, fmt.Errorf("search provider %q must be one of %v", tc.Search.Provider, searchProviders))
	}
	if tc.EditLink != nil && !strings.Contains(tc.EditLink.Pattern, PathPlaceholder) {
		errs = multierror.Append(errs, fmt.Errorf("edit link pattern %q has no %s placeholder", tc.EditLink.Pattern, PathPlaceholder))
	}
	return errs.ErrorOrNil()
}

func validateItems(errs *multierror.Error, parent string, items []SidebarItem) *multierror.Error {
	for i, item := range items {
		where := fmt.Sprintf("%s item %d", parent, i)
		if item.Text == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s must have text", where))
		}
		if item.Link == "" && !item.IsGroup() {
			errs = multierror.Append(errs, fmt.Errorf("%s must have a link, items or autogenerate", where))
		}
		if dir := item.Autogenerate; dir != "" {
			if path.IsAbs(dir) || path.Clean(dir) != dir || dir == "." || dir == ".." || strings.HasPrefix(dir, "../") {
				errs = multierror.Append(errs, fmt.Errorf("%s autogenerate %q must be a clean path relative to the documentation root", where, dir))
			}
		}
		errs = validateItems(errs, where, item.Items)
	}
	return errs
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
