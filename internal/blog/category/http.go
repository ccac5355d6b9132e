// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/relatolabs/relato/internal/platform/ctxutil"
	"github.com/relatolabs/relato/internal/platform/i18n"
	requestutil "github.com/relatolabs/relato/internal/platform/request"
	"github.com/relatolabs/relato/internal/platform/respond"
)

type Handler struct {
	service  *Service
	messages *i18n.Bundle
}

func NewHandler(service *Service, messages *i18n.Bundle) *Handler {
	return &Handler{service: service, messages: messages}
}

// Routes returns a [chi.Router] with the public category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listCategories)
	router.Get("/{slug}", handler.getCategoryBySlug)
	return router
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "categories.retrieved"), map[string]any{
		"categories": categories,
	})
}

func (handler *Handler) getCategoryBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	found, err := handler.service.GetCategoryBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "categories.one_retrieved"), map[string]any{
		"category": found,
	})
}
