// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package slug turns arbitrary Unicode titles into ASCII URL slugs.
//
// A slug is the public lookup key of a post, category, or tag, e.g.
// "primeros-pasos-con-go". Accents are stripped through Unicode
// decomposition and anything outside [a-z0-9] becomes a hyphen.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var hyphenRuns = regexp.MustCompile(`-{2,}`)

// From derives the canonical slug of s: NFD-decompose, drop combining
// marks, lowercase, map every other rune to a hyphen, then collapse and
// trim the hyphens.
func From(s string) string {
	deaccent := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, _ := transform.String(deaccent, s)

	out = strings.ToLower(out)
	out = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, out)

	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// IsValid reports whether s is already in canonical slug form.
func IsValid(s string) bool {
	return s != "" && s == From(s)
}
