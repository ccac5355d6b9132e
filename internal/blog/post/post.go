// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package post implements the public post listing and retrieval pipeline.

Every listing call site (front page, search, category, tag, author) shares a
single filter model and a single repository query, so all of them produce the
same post shape and the same pagination metadata.
*/
package post

import "time"

// Author is the nested author shape embedded in post payloads.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is the nested category shape embedded in post payloads.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Tag is the nested tag shape embedded in post payloads.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Post is a published article with its rendered relationships.
//
// Content carries the full body and is only serialized on single-post
// retrieval; listings expose the derived Excerpt instead.
type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content,omitempty"`
	Excerpt      string    `json:"excerpt"`
	ImageURL     *string   `json:"image"`
	ViewCount    int64     `json:"views"`
	Author       Author    `json:"author"`
	Category     Category  `json:"category"`
	Tags         []Tag     `json:"tags"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SearchScope selects which columns the free-text predicate matches.
type SearchScope int

const (
	// ScopeBasic matches title and content only.
	ScopeBasic SearchScope = iota
	// ScopeExtended additionally matches category, tag and author names.
	ScopeExtended
)

// Filter describes the composable predicates of a listing query.
// Zero values mean "not filtered"; active filters combine with AND.
type Filter struct {
	Query      string
	Scope      SearchScope
	CategoryID int64
	TagID      int64
	AuthorID   string
}

// CategoryGroup pairs a category with its most recent posts.
type CategoryGroup struct {
	Category Category `json:"category"`
	Posts    []*Post  `json:"posts"`
}

// Overview is the condensed front-page payload served by the summary
// endpoint: the newest posts, the most viewed, and the newest per category.
type Overview struct {
	LatestPosts     []*Post         `json:"latest_posts"`
	MostViewedPosts []*Post         `json:"most_viewed_posts"`
	PostsByCategory []CategoryGroup `json:"posts_by_category"`
}
