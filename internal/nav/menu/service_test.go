// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package menu_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatolabs/relato/internal/nav/menu"
	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/pkg/pointer"
)

// fakeRepository serves canned rows and records the activeOnly flag it saw.
type fakeRepository struct {
	menus      map[int64]*menu.Menu
	items      []*menu.MenuItem
	activeOnly bool
}

func (f *fakeRepository) GetMenuByID(_ context.Context, id int64) (*menu.Menu, error) {
	m, ok := f.menus[id]
	if !ok {
		return nil, apperr.NotFound("Menu")
	}
	return m, nil
}

func (f *fakeRepository) ListItems(_ context.Context, menuID int64, activeOnly bool) ([]*menu.MenuItem, error) {
	f.activeOnly = activeOnly

	out := make([]*menu.MenuItem, 0)
	for _, it := range f.items {
		if it.MenuID != menuID {
			continue
		}
		if activeOnly && !it.IsActive {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func active(id int64, menuID int64, parentID *int64, label string) *menu.MenuItem {
	return &menu.MenuItem{ID: id, MenuID: menuID, ParentID: parentID, Label: label, IsActive: true}
}

/*
TestService_GetMenuTree verifies that items are fetched and assembled with
the default active-only filter.
*/
func TestService_GetMenuTree(t *testing.T) {
	repo := &fakeRepository{
		menus: map[int64]*menu.Menu{1: {ID: 1, Name: "main"}},
		items: []*menu.MenuItem{
			active(10, 1, nil, "Home"),
			active(11, 1, pointer.To(int64(10)), "Nested"),
			{ID: 12, MenuID: 1, Label: "Hidden", IsActive: false},
		},
	}
	service := menu.NewService(repo, slog.Default(), false)

	roots, err := service.GetMenuTree(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, repo.activeOnly)
	require.Len(t, roots, 1)
	assert.Equal(t, "Home", roots[0].Label)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Nested", roots[0].Children[0].Label)
}

/*
TestService_GetMenuTree_IncludeInactive verifies the configurable filter
override passes through to the repository.
*/
func TestService_GetMenuTree_IncludeInactive(t *testing.T) {
	repo := &fakeRepository{
		menus: map[int64]*menu.Menu{1: {ID: 1, Name: "main"}},
		items: []*menu.MenuItem{
			active(10, 1, nil, "Home"),
			{ID: 12, MenuID: 1, Label: "Hidden", IsActive: false},
		},
	}
	service := menu.NewService(repo, slog.Default(), true)

	roots, err := service.GetMenuTree(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, repo.activeOnly)
	assert.Len(t, roots, 2)
}

/*
TestService_GetMenuTree_UnknownMenu verifies that a missing menu surfaces
as a not-found error before any item query runs.
*/
func TestService_GetMenuTree_UnknownMenu(t *testing.T) {
	repo := &fakeRepository{menus: map[int64]*menu.Menu{}}
	service := menu.NewService(repo, slog.Default(), false)

	_, err := service.GetMenuTree(context.Background(), 42)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

/*
TestService_GetMenuTree_EmptyMenu verifies that a menu without items yields
an empty array, not an error.
*/
func TestService_GetMenuTree_EmptyMenu(t *testing.T) {
	repo := &fakeRepository{menus: map[int64]*menu.Menu{7: {ID: 7, Name: "footer"}}}
	service := menu.NewService(repo, slog.Default(), false)

	roots, err := service.GetMenuTree(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}
