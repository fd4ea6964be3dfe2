// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

const (
	// MarkdownExtension is the extension of files eligible for a sidebar entry
	MarkdownExtension = ".md"
	// IndexFile is the directory index page. It is linked separately and
	// never becomes a derived entry.
	IndexFile = "index.md"
)

// NavigationEntry is a clickable item of the site's side navigation.
// The field names are part of the generator's configuration format.
type NavigationEntry struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Lister reports directory listings relative to a documentation root
//
//counterfeiter:generate . Lister
type Lister interface {
	// Exists reports whether dir is present under the documentation root
	Exists(ctx context.Context, dir string) (bool, error)
	// List returns the entry names of dir, non-recursively, in host order
	List(ctx context.Context, dir string) ([]string, error)
}

// TitleSource may override the filename derived label of a document
//
//counterfeiter:generate . TitleSource
type TitleSource interface {
	// Title returns the label for file name in dir and whether one was found
	Title(ctx context.Context, dir string, name string) (string, bool, error)
}

// Deriver builds sidebar entries out of a directory listing
type Deriver struct {
	lister Lister
	titles TitleSource
}

// Option configures a Deriver
type Option func(*Deriver)

// WithTitleSource makes the deriver prefer labels provided by ts
func WithTitleSource(ts TitleSource) Option {
	return func(d *Deriver) {
		d.titles = ts
	}
}

// NewDeriver creates a Deriver reading listings from lister
func NewDeriver(lister Lister, opts ...Option) *Deriver {
	d := &Deriver{lister: lister}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Entries returns a navigation entry for every markdown document in directory,
// except its index page, in the order the listing reports them.
// A directory that does not exist yields no entries and no error.
func (d *Deriver) Entries(ctx context.Context, directory string) ([]NavigationEntry, error) {
	entries := []NavigationEntry{}
	exists, err := d.lister.Exists(ctx, directory)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", directory, err)
	}
	if !exists {
		return entries, nil
	}
	names, err := d.lister.List(ctx, directory)
	if err != nil {
		// removed between the two calls
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("listing %s: %w", directory, err)
	}
	for _, name := range names {
		if !strings.HasSuffix(name, MarkdownExtension) || name == IndexFile {
			continue
		}
		base := strings.TrimSuffix(name, MarkdownExtension)
		text := Title(base)
		if d.titles != nil {
			title, ok, err := d.titles.Title(ctx, directory, name)
			if err != nil {
				return nil, fmt.Errorf("reading title of %s/%s: %w", directory, name, err)
			}
			if ok {
				text = title
			}
		}
		entries = append(entries, NavigationEntry{Text: text, Link: Link(directory, base)})
	}
	return entries, nil
}

// Link returns the site-relative link of document base in directory
func Link(directory string, base string) string {
	return fmt.Sprintf("/%s/%s", directory, base)
}
