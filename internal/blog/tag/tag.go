// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package tag

import "time"

// Tag is a free-form label applied to posts.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// PostCount is populated by listing queries only.
	PostCount int `json:"post_count"`
}
