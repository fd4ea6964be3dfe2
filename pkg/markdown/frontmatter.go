// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// goldmark.Markdown parser with frontmatter support
var gmParser = goldmark.New(goldmark.WithExtensions(meta.Meta))

// Frontmatter parses the YAML frontmatter of a markdown document.
// Documents without frontmatter yield an empty map.
func Frontmatter(source []byte) (map[string]interface{}, error) {
	pc := parser.NewContext()
	gmParser.Parser().Parse(text.NewReader(source), parser.WithContext(pc))
	fm, err := meta.TryGet(pc)
	if err != nil {
		return nil, err
	}
	if fm == nil {
		fm = map[string]interface{}{}
	}
	return fm, nil
}

// FrontmatterTitle returns the non-empty string `title` of a document's frontmatter
func FrontmatterTitle(source []byte) (string, bool, error) {
	fm, err := Frontmatter(source)
	if err != nil {
		return "", false, err
	}
	title, ok := fm["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return "", false, nil
	}
	return title, true, nil
}

// Reader reads documents relative to a documentation root
type Reader interface {
	Read(ctx context.Context, file string) ([]byte, error)
}

// Titles provides sidebar labels from document frontmatter
type Titles struct {
	Reader Reader
}

// Title reads dir/name and returns its frontmatter title, if any
func (t *Titles) Title(ctx context.Context, dir string, name string) (string, bool, error) {
	file := path.Join(dir, name)
	cnt, err := t.Reader.Read(ctx, file)
	if err != nil {
		return "", false, err
	}
	title, ok, err := FrontmatterTitle(cnt)
	if err != nil {
		return "", false, fmt.Errorf("invalid frontmatter in %s: %w", file, err)
	}
	return title, ok, nil
}
