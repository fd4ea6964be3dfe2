// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import "bytes"

// Site is the declaration of a documentation website. It is read from a
// manifest and rendered into the configuration object of the site generator.
type Site struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Base is the path the site is served under, e.g. /frond/
	Base string `yaml:"base,omitempty" json:"base,omitempty"`
	// Plugins enable generator plugins, e.g. mermaid
	Plugins []string `yaml:"plugins,omitempty" json:"-"`
	// DocsRoot is the documentation root autogenerated sidebar groups are
	// derived from: a local directory or a repository tree URL
	DocsRoot    string      `yaml:"docsRoot,omitempty" json:"-"`
	ThemeConfig ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

// ThemeConfig is passed to the generator's default theme
type ThemeConfig struct {
	Nav []NavItem `yaml:"nav,omitempty" json:"nav,omitempty"`
	// Sidebar maps a path prefix to the sidebar shown on pages under it
	Sidebar     map[string][]SidebarItem `yaml:"sidebar,omitempty" json:"sidebar,omitempty"`
	SocialLinks []SocialLink             `yaml:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Search      *Search                  `yaml:"search,omitempty" json:"search,omitempty"`
	EditLink    *EditLink                `yaml:"editLink,omitempty" json:"editLink,omitempty"`
}

// NavItem is an entry of the top navigation bar
type NavItem struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// SidebarItem is either a link or a group of items
type SidebarItem struct {
	Text      string        `yaml:"text" json:"text"`
	Link      string        `yaml:"link,omitempty" json:"link,omitempty"`
	Collapsed *bool         `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []SidebarItem `yaml:"items,omitempty" json:"items,omitempty"`
	// Autogenerate names a directory under the documentation root whose
	// documents are appended to Items when the site is resolved
	Autogenerate string `yaml:"autogenerate,omitempty" json:"-"`
}

// MarshalJSON keeps an explicitly empty item list, which marks a group
func (s SidebarItem) MarshalJSON() ([]byte, error) {
	type plain SidebarItem
	var v interface{} = plain(s)
	if s.Items != nil && len(s.Items) == 0 {
		v = struct {
			plain
			Items []SidebarItem `json:"items"`
		}{plain(s), s.Items}
	}
	b, err := marshalJSON(v, "")
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b, []byte("\n")), nil
}

// IsGroup reports whether the item holds other items
func (s SidebarItem) IsGroup() bool {
	return s.Items != nil || s.Autogenerate != ""
}

// SocialLink is an icon link in the navigation bar
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// Search configures the search provider
type Search struct {
	Provider string `yaml:"provider" json:"provider"`
}

// EditLink configures the "edit this page" link. Pattern holds a :path placeholder.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// DeepCopy returns a copy of the site sharing no mutable state with s
func (s *Site) DeepCopy() *Site {
	out := *s
	out.Plugins = append([]string(nil), s.Plugins...)
	out.ThemeConfig.Nav = append([]NavItem(nil), s.ThemeConfig.Nav...)
	out.ThemeConfig.SocialLinks = append([]SocialLink(nil), s.ThemeConfig.SocialLinks...)
	if s.ThemeConfig.Search != nil {
		search := *s.ThemeConfig.Search
		out.ThemeConfig.Search = &search
	}
	if s.ThemeConfig.EditLink != nil {
		editLink := *s.ThemeConfig.EditLink
		out.ThemeConfig.EditLink = &editLink
	}
	if s.ThemeConfig.Sidebar != nil {
		out.ThemeConfig.Sidebar = make(map[string][]SidebarItem, len(s.ThemeConfig.Sidebar))
		for k, items := range s.ThemeConfig.Sidebar {
			out.ThemeConfig.Sidebar[k] = copyItems(items)
		}
	}
	return &out
}

func copyItems(items []SidebarItem) []SidebarItem {
	if items == nil {
		return nil
	}
	out := make([]SidebarItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.Collapsed != nil {
			collapsed := *item.Collapsed
			out[i].Collapsed = &collapsed
		}
		out[i].Items = copyItems(item.Items)
	}
	return out
}
