// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata and navigation links are delivered in the
// API response envelope.
package pagination

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 15
	// DefaultMaxPerPage is the upper bound for items per page to prevent system abuse.
	// Individual endpoints may configure a different cap via [FromRequestMax].
	DefaultMaxPerPage = 50
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and per_page from a request's query string.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the SQL OFFSET value derived from [Params.Page] and [Params.PerPage].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Links holds absolute navigation URLs for a paginated response.
// Prev and Next are null at the respective boundaries.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// NewMeta constructs pagination metadata for a response.
//
// LastPage is always at least 1 so that an empty result set still reports a
// sensible page range.
func NewMeta(page, perPage, total int) Meta {
	lastPage := 1
	if perPage > 0 && total > 0 {
		lastPage = (total + perPage - 1) / perPage
	}

	return Meta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
}

// NewLinks derives first/last/prev/next URLs from the request URL and the
// computed metadata. All other query parameters of the request are preserved.
func NewLinks(request *http.Request, meta Meta) Links {
	links := Links{
		First: pageURL(request, 1),
		Last:  pageURL(request, meta.LastPage),
	}

	if meta.CurrentPage > 1 {
		prev := pageURL(request, meta.CurrentPage-1)
		links.Prev = &prev
	}

	if meta.CurrentPage < meta.LastPage {
		next := pageURL(request, meta.CurrentPage+1)
		links.Next = &next
	}

	return links
}

// FieldError names one rejected query parameter.
type FieldError struct {
	Field   string
	Message string
}

// InvalidParamsError reports pagination parameters that failed
// validation. Callers translate it into their own 422 shape.
type InvalidParamsError struct {
	Fields []FieldError
}

func (e *InvalidParamsError) Error() string {
	return "pagination: invalid query parameters"
}

// FromRequest parses "page" and "per_page" query parameters from an HTTP request.
//
// Absent parameters fall back to [DefaultPage] and [DefaultPerPage];
// anything present must be a well-formed integer inside the allowed
// range, otherwise an [InvalidParamsError] lists every offending field.
func FromRequest(r *http.Request) (Params, error) {
	return FromRequestMax(r, DefaultMaxPerPage)
}

// FromRequestMax behaves like [FromRequest] with an endpoint-specific per_page cap.
func FromRequestMax(r *http.Request, maxPerPage int) (Params, error) {
	query := r.URL.Query()
	params := Params{Page: DefaultPage, PerPage: DefaultPerPage}
	var rejected []FieldError

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			rejected = append(rejected, FieldError{"page", "Must be an integer"})
		case page < 1:
			rejected = append(rejected, FieldError{"page", "Must be at least 1"})
		default:
			params.Page = page
		}
	}

	if raw := query.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			rejected = append(rejected, FieldError{"per_page", "Must be an integer"})
		case perPage < 1:
			rejected = append(rejected, FieldError{"per_page", "Must be at least 1"})
		case perPage > maxPerPage:
			rejected = append(rejected, FieldError{"per_page", fmt.Sprintf("Must be at most %d", maxPerPage)})
		default:
			params.PerPage = perPage
		}
	}

	if len(rejected) > 0 {
		return Params{}, &InvalidParamsError{Fields: rejected}
	}

	return params, nil
}

// pageURL rebuilds the request URL with the "page" parameter replaced.
func pageURL(request *http.Request, page int) string {
	rebuilt := url.URL{
		Scheme: requestScheme(request),
		Host:   request.Host,
		Path:   request.URL.Path,
	}

	values := request.URL.Query()
	values.Set("page", strconv.Itoa(page))
	rebuilt.RawQuery = values.Encode()

	return rebuilt.String()
}

// requestScheme resolves the external scheme, respecting proxy headers.
func requestScheme(request *http.Request) string {
	if proto := request.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if request.TLS != nil {
		return "https"
	}
	return "http"
}
