// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relatolabs/relato/pkg/slug"
)

func TestFrom(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "Hello World", "hello-world"},
		{"Accents", "Primeros Pasos con Go, Año 1", "primeros-pasos-con-go-ano-1"},
		{"Punctuation", "What's new in Go 1.22?", "what-s-new-in-go-1-22"},
		{"MultipleSpaces", "too   many    spaces", "too-many-spaces"},
		{"LeadingTrailing", "  --edge case--  ", "edge-case"},
		{"AlreadySlug", "already-a-slug", "already-a-slug"},
		{"Empty", "", ""},
		{"OnlySymbols", "!!!???", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, slug.From(testCase.input))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, slug.IsValid("hello-world"))
	assert.True(t, slug.IsValid("go-1-22"))

	assert.False(t, slug.IsValid(""))
	assert.False(t, slug.IsValid("Hello World"))
	assert.False(t, slug.IsValid("double--hyphen"))
	assert.False(t, slug.IsValid("-leading"))
}
