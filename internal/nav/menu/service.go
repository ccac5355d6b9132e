// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package menu

import (
	"context"
	"log/slog"

	"github.com/relatolabs/relato/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger

	// includeInactive disables the default active-only filter.
	includeInactive bool
}

func NewService(repo Repository, logger *slog.Logger, includeInactive bool) *Service {
	return &Service{
		repo:            repo,
		logger:          logger,
		includeInactive: includeInactive,
	}
}

// GetMenuTree loads a menu's items and assembles them into a forest.
// The tree is rebuilt from current rows on every call; there is no cache.
func (service *Service) GetMenuTree(context context.Context, menuID int64) ([]*MenuItem, error) {
	if _, err := service.repo.GetMenuByID(context, menuID); err != nil {
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == 404 {
			return nil, apperr.NotFound("Menu")
		}
		return nil, err
	}

	items, err := service.repo.ListItems(context, menuID, !service.includeInactive)
	if err != nil {
		return nil, err
	}

	return BuildTree(items), nil
}
