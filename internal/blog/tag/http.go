// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package tag

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

// Routes returns a [chi.Router] with the public tag endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTags)
	router.Get("/{slug}", handler.getTagBySlug)
	return router
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "tags.retrieved"), map[string]any{
		"tags": tags,
	})
}

func (handler *Handler) getTagBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	found, err := handler.service.GetTagBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "tags.one_retrieved"), map[string]any{
		"tag": found,
	})
}
