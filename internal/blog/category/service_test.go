// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package category_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/blog/category"
	"github.com/relatolabs/relato/internal/platform/apperr"
)

// fakeRepository serves canned categories keyed by slug.
type fakeRepository struct {
	categories []*category.Category
}

func (f *fakeRepository) ListCategories(_ context.Context) ([]*category.Category, error) {
	return f.categories, nil
}

func (f *fakeRepository) GetCategoryBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Resource")
}

func newService() *category.Service {
	repo := &fakeRepository{categories: []*category.Category{
		{ID: 1, Name: "News", Slug: "news", PostCount: 3},
		{ID: 2, Name: "Tutorials", Slug: "tutorials", PostCount: 1},
	}}
	return category.NewService(repo, slog.Default())
}

func TestService_ListCategories(t *testing.T) {
	service := newService()

	categories, err := service.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "news", categories[0].Slug)
	assert.Equal(t, 3, categories[0].PostCount)
}

func TestService_GetCategoryBySlug(t *testing.T) {
	service := newService()

	found, err := service.GetCategoryBySlug(context.Background(), "tutorials")

	require.NoError(t, err)
	assert.Equal(t, "Tutorials", found.Name)
}

/*
TestService_GetCategoryBySlug_Unknown verifies that a missing row surfaces
as NotFound naming the entity rather than the generic resource.
*/
func TestService_GetCategoryBySlug_Unknown(t *testing.T) {
	service := newService()

	_, err := service.GetCategoryBySlug(context.Background(), "missing")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
	assert.Contains(t, appError.Message, "Category")
}
