// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package excerpt derives short plain-text previews from rich-text content.
//
// # Overview
//
// Post bodies are stored as sanitized HTML. List endpoints surface a compact
// preview instead of the full body, so this package strips every tag and
// truncates the remaining text on a rune boundary.
package excerpt

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultLength is the preview length (in runes) used by post listings.
const DefaultLength = 100

// stripper removes every HTML element and attribute, leaving text content only.
// A single policy instance is safe for concurrent use.
var stripper = bluemonday.StrictPolicy()

// From strips markup from content and truncates the result to at most
// maxRunes runes, appending an ellipsis when the text was shortened.
func From(content string, maxRunes int) string {
	plain := stripper.Sanitize(content)

	// bluemonday escapes entities on output. Decode them so the preview shows
	// real characters, then normalize runs of whitespace left by block tags.
	plain = html.UnescapeString(plain)
	plain = strings.Join(strings.Fields(plain), " ")

	runes := []rune(plain)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return plain
	}

	return strings.TrimRight(string(runes[:maxRunes]), " ") + "..."
}

// Preview applies [From] with [DefaultLength].
func Preview(content string) string {
	return From(content, DefaultLength)
}
