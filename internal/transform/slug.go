// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"sort"
	"strings"
	"unicode"
)

// Slug returns the anchor id for heading text: the text is lower-cased and
// every rune other than a letter, number or underscore becomes one '-'.
// Runs of hyphens are kept as they are.
func Slug(text string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return '-'
	}, strings.ToLower(text))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// DuplicateAnchors returns, sorted, every anchor that more than one heading
// received.
func DuplicateAnchors(headings []Heading) []string {
	counts := make(map[string]int, len(headings))
	for _, h := range headings {
		counts[h.Anchor]++
	}
	var dups []string
	for anchor, n := range counts {
		if n > 1 {
			dups = append(dups, anchor)
		}
	}
	sort.Strings(dups)
	return dups
}
