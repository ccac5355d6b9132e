// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package post

import "context"

type Repository interface {
	// List returns one page of published posts matching the filter, plus
	// the total number of matching rows.
	List(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error)
	GetBySlug(context context.Context, slug string) (*Post, error)

	// Summary queries for the front-page overview.
	ListMostViewed(context context.Context, limit int) ([]*Post, error)
	ListRecentByCategory(context context.Context, perCategory int) ([]*Post, error)

	// Slug resolution for the scoped listing endpoints.
	GetCategoryIDBySlug(context context.Context, slug string) (int64, error)
	GetTagIDBySlug(context context.Context, slug string) (int64, error)
	AuthorExists(context context.Context, authorID string) (bool, error)
}
