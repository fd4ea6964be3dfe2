// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sidebar

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator splits a base filename into label words
const Separator = "-"

// Title converts a kebab-case base filename into a display label:
// `wave-function-collapse` -> `Wave Function Collapse`.
// Only the first character of each word changes. Empty words produced by
// adjacent separators are kept, so `foo--bar` becomes `Foo  Bar`.
func Title(base string) string {
	words := strings.Split(base, Separator)
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return word
	}
	// a Caser holds state and is not shared
	return cases.Upper(language.Und).String(word[:size]) + word[size:]
}
