// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package category provides the editorial taxonomy posts are filed under.
package category

import "time"

// Category groups posts into a single editorial section.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// PostCount is populated by listing queries only.
	PostCount int `json:"post_count"`
}
