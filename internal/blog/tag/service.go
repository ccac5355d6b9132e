// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package tag

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

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	tag, err := service.repo.GetTagBySlug(context, slug)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == 404 {
			return nil, apperr.NotFound("Tag")
		}
		return nil, err
	}
	return tag, nil
}
