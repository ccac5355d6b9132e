// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Package menu provides hierarchical navigation menus for the public site.
//
// A menu is a named container of items. Items form a tree via ParentID and
// are rendered either as internal routes or external URLs.
package menu

import "time"

// Menu is a named navigation container (e.g. "main", "footer").
type Menu struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// MenuItem is a single navigation entry.
//
// Exactly one of Route or URL is meaningful: internal items carry an
// application route, external items (IsExternal) carry an absolute URL.
type MenuItem struct {
	ID         int64   `json:"id"`
	Label      string  `json:"label"`
	Icon       *string `json:"icon"`
	Route      *string `json:"route"`
	URL        *string `json:"url"`
	IsExternal bool    `json:"is_external"`
	IsActive   bool    `json:"is_active"`
	Position   int     `json:"position"`
	MenuID     int64   `json:"menu_id"`
	ParentID   *int64  `json:"parent_id"`

	// Children holds nested items ordered by Position. It is never nil in
	// assembled trees so the JSON output is always an array.
	Children []*MenuItem `json:"children"`
}
