// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	testCases := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"Defaults", "", 1, 15},
		{"Explicit", "?page=3&per_page=25", 3, 25},
		{"PerPageAtCap", "?per_page=50", 1, 50},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/posts"+testCase.query, nil)
			params, err := pagination.FromRequest(request)

			require.NoError(t, err)
			assert.Equal(t, testCase.wantPage, params.Page)
			assert.Equal(t, testCase.wantPerPage, params.PerPage)
		})
	}
}

// Present-but-broken parameters must be rejected, not normalized; only
// absent ones fall back to defaults.
func TestFromRequest_RejectsInvalidParams(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		wantFields []string
	}{
		{"NonIntegerPage", "?page=abc", []string{"page"}},
		{"ZeroPage", "?page=0", []string{"page"}},
		{"NegativePage", "?page=-2", []string{"page"}},
		{"NonIntegerPerPage", "?per_page=xyz", []string{"per_page"}},
		{"ZeroPerPage", "?per_page=0", []string{"per_page"}},
		{"PerPageOverCap", "?per_page=500", []string{"per_page"}},
		{"BothBroken", "?page=abc&per_page=999", []string{"page", "per_page"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/posts"+testCase.query, nil)
			_, err := pagination.FromRequest(request)

			var invalid *pagination.InvalidParamsError
			require.ErrorAs(t, err, &invalid)

			fields := make([]string, 0, len(invalid.Fields))
			for _, field := range invalid.Fields {
				fields = append(fields, field.Field)
			}
			assert.Equal(t, testCase.wantFields, fields)
		})
	}
}

func TestFromRequestMax_CustomCap(t *testing.T) {
	request := httptest.NewRequest("GET", "/api/v1/posts?per_page=80", nil)

	// Under a raised cap the value passes through.
	params, err := pagination.FromRequestMax(request, 100)
	require.NoError(t, err)
	assert.Equal(t, 80, params.PerPage)

	// Under a lowered cap the same value is an error, not a fallback.
	_, err = pagination.FromRequestMax(request, 20)
	var invalid *pagination.InvalidParamsError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Fields, 1)
	assert.Equal(t, "per_page", invalid.Fields[0].Field)
	assert.Equal(t, "Must be at most 20", invalid.Fields[0].Message)
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PerPage: 15}.Offset())
	assert.Equal(t, 30, pagination.Params{Page: 3, PerPage: 15}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, PerPage: 15}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 45)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 5, meta.LastPage)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, 45, meta.Total)
}

func TestNewMeta_EmptyResult(t *testing.T) {
	// An empty collection still reports page 1 of 1.
	meta := pagination.NewMeta(1, 10, 0)
	assert.Equal(t, 1, meta.LastPage)
}

func TestNewLinks(t *testing.T) {
	request := httptest.NewRequest("GET", "http://api.relato.app/api/v1/posts?q=go&page=2", nil)
	meta := pagination.NewMeta(2, 15, 60)

	links := pagination.NewLinks(request, meta)

	assert.Equal(t, "http://api.relato.app/api/v1/posts?page=1&q=go", links.First)
	assert.Equal(t, "http://api.relato.app/api/v1/posts?page=4&q=go", links.Last)

	require.NotNil(t, links.Prev)
	assert.Equal(t, "http://api.relato.app/api/v1/posts?page=1&q=go", *links.Prev)

	require.NotNil(t, links.Next)
	assert.Equal(t, "http://api.relato.app/api/v1/posts?page=3&q=go", *links.Next)
}

func TestNewLinks_Boundaries(t *testing.T) {
	request := httptest.NewRequest("GET", "http://api.relato.app/api/v1/posts", nil)

	// First page has no prev.
	links := pagination.NewLinks(request, pagination.NewMeta(1, 15, 60))
	assert.Nil(t, links.Prev)
	assert.NotNil(t, links.Next)

	// Last page has no next.
	links = pagination.NewLinks(request, pagination.NewMeta(4, 15, 60))
	assert.NotNil(t, links.Prev)
	assert.Nil(t, links.Next)

	// A single page has neither.
	links = pagination.NewLinks(request, pagination.NewMeta(1, 15, 5))
	assert.Nil(t, links.Prev)
	assert.Nil(t, links.Next)
}

func TestNewLinks_ForwardedProto(t *testing.T) {
	request := httptest.NewRequest("GET", "http://api.relato.app/api/v1/posts", nil)
	request.Header.Set("X-Forwarded-Proto", "https")

	links := pagination.NewLinks(request, pagination.NewMeta(1, 15, 5))
	assert.Equal(t, "https://api.relato.app/api/v1/posts?page=1", links.First)
}
