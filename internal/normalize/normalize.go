// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize produces comparison keys for Vietnamese names.
//
// Keys are the pipeline's sole notion of identity across spelling and
// diacritic variation. They are used for equality and lookup only, never
// displayed.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
// This folds every tonal variant of a/e/i/o/u/y to the bare vowel.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// đ carries no combining mark, so the NFD chain leaves it alone.
var foldD = strings.NewReplacer("đ", "d")

// Key returns the canonical comparison key for an ingredient name: trimmed,
// lower-cased, diacritics folded to base Latin letters ("Cà Chua" -> "ca chua").
// Deterministic, idempotent, and defined for any string including "".
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = foldD.Replace(s)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return folded
}

// DishKey returns the dish deduplication key: trimmed and lower-cased with
// diacritics kept. The weaker key is intentional: "phở bò" and "pho bo" are
// distinct dishes even though their ingredient keys would fold together.
func DishKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
