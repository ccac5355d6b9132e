// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package excerpt_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/relatolabs/relato/pkg/excerpt"
)

func TestFrom_StripsMarkup(t *testing.T) {
	got := excerpt.From("<p>Hello <strong>world</strong></p>", 100)
	assert.Equal(t, "Hello world", got)
}

func TestFrom_Truncates(t *testing.T) {
	content := strings.Repeat("abcde ", 50) // 300 chars of plain text

	got := excerpt.From(content, 100)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 103)
}

func TestFrom_ShortContentUntouched(t *testing.T) {
	got := excerpt.From("Short note", 100)
	assert.Equal(t, "Short note", got)
}

func TestFrom_RuneBoundary(t *testing.T) {
	// Multi-byte runes must never be split mid-sequence.
	content := strings.Repeat("é", 150)

	got := excerpt.From(content, 100)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 100)+"...", got)
}

func TestFrom_DecodesEntities(t *testing.T) {
	got := excerpt.From("<p>Fish &amp; Chips</p>", 100)
	assert.Equal(t, "Fish & Chips", got)
}

func TestFrom_CollapsesBlockWhitespace(t *testing.T) {
	got := excerpt.From("<p>First paragraph.</p>\n<p>Second   paragraph.</p>", 100)
	assert.Equal(t, "First paragraph. Second paragraph.", got)
}

func TestFrom_DropsScripts(t *testing.T) {
	got := excerpt.From(`<script>alert("x")</script>Safe text`, 100)
	assert.Equal(t, "Safe text", got)
}

func TestPreview_UsesDefaultLength(t *testing.T) {
	content := strings.Repeat("x", 500)

	got := excerpt.Preview(content)

	assert.Equal(t, strings.Repeat("x", excerpt.DefaultLength)+"...", got)
}
