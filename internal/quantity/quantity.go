// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quantity parses free-text amount expressions from recipe pages
// into a numeric quantity and a unit.
package quantity

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount is the structured form of a free-text amount expression.
// Quantity is nil when no numeric part was recognized; Unit is empty when
// the text was purely numeric or blank.
type Amount struct {
	Quantity *float64
	Unit     string
}

var (
	numberUnitRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s+(.+)$`)
	fractionRe   = regexp.MustCompile(`^(\d+)/(\d+)\s+(.+)$`)
	bareNumberRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)$`)
)

// Parse splits a free-text amount into a numeric quantity and a unit.
// Rules apply in order, first match wins:
//
//	""          -> (nil, "")
//	"500 gram"  -> (500, "gram")     decimal comma normalized to dot
//	"1/2 kg"    -> (0.5, "kg")       zero denominator falls through
//	"500"       -> (500, "")
//	"ít"        -> (nil, "ít")       qualitative amounts land in Unit
//
// Parse is total: malformed text degrades to the last rule instead of
// failing the record.
func Parse(text string) Amount {
	text = strings.TrimSpace(text)
	if text == "" {
		return Amount{}
	}

	if m := numberUnitRe.FindStringSubmatch(text); m != nil {
		q := parseNumber(m[1])
		return Amount{Quantity: &q, Unit: strings.TrimSpace(m[2])}
	}

	if m := fractionRe.FindStringSubmatch(text); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den != 0 {
			q := num / den
			return Amount{Quantity: &q, Unit: strings.TrimSpace(m[3])}
		}
	}

	if m := bareNumberRe.FindStringSubmatch(text); m != nil {
		q := parseNumber(m[1])
		return Amount{Quantity: &q}
	}

	return Amount{Unit: text}
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return v
}
