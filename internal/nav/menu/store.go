// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package menu

import "context"

type Repository interface {
	GetMenuByID(context context.Context, id int64) (*Menu, error)
	// ListItems returns the menu's items ordered by position. When
	// activeOnly is set, inactive items (and therefore their subtrees)
	// are excluded.
	ListItems(context context.Context, menuID int64, activeOnly bool) ([]*MenuItem, error)
}
