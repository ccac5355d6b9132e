// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package category

import (
	"context"
	"log/slog"

	"github.com/relatolabs/relato/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	category, err := service.repo.GetCategoryBySlug(context, slug)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == 404 {
			return nil, apperr.NotFound("Category")
		}
		return nil, err
	}
	return category, nil
}
