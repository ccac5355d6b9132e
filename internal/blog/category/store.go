// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package category

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
}
