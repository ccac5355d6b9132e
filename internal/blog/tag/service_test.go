// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package tag_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/blog/tag"
	"github.com/relatolabs/relato/internal/platform/apperr"
)

// fakeRepository serves canned tags keyed by slug.
type fakeRepository struct {
	tags []*tag.Tag
}

func (f *fakeRepository) ListTags(_ context.Context) ([]*tag.Tag, error) {
	return f.tags, nil
}

func (f *fakeRepository) GetTagBySlug(_ context.Context, slug string) (*tag.Tag, error) {
	for _, item := range f.tags {
		if item.Slug == slug {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Resource")
}

func newService() *tag.Service {
	repo := &fakeRepository{tags: []*tag.Tag{
		{ID: 1, Name: "Go", Slug: "go", PostCount: 4},
		{ID: 2, Name: "SQL", Slug: "sql", PostCount: 2},
	}}
	return tag.NewService(repo, slog.Default())
}

func TestService_ListTags(t *testing.T) {
	service := newService()

	tags, err := service.ListTags(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Slug)
	assert.Equal(t, 4, tags[0].PostCount)
}

func TestService_GetTagBySlug(t *testing.T) {
	service := newService()

	found, err := service.GetTagBySlug(context.Background(), "sql")

	require.NoError(t, err)
	assert.Equal(t, "SQL", found.Name)
}

func TestService_GetTagBySlug_Unknown(t *testing.T) {
	service := newService()

	_, err := service.GetTagBySlug(context.Background(), "missing")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
	assert.Contains(t, appError.Message, "Tag")
}
