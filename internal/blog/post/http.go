// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package post

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/constants"
	"github.com/relatolabs/relato/internal/platform/ctxutil"
	"github.com/relatolabs/relato/internal/platform/i18n"
	requestutil "github.com/relatolabs/relato/internal/platform/request"
	"github.com/relatolabs/relato/internal/platform/respond"
	"github.com/relatolabs/relato/pkg/pagination"
)

type Handler struct {
	service  *Service
	messages *i18n.Bundle

	// perPageMax caps the client-supplied per_page parameter.
	perPageMax int
}

func NewHandler(service *Service, messages *i18n.Bundle, perPageMax int) *Handler {
	if perPageMax < 1 {
		perPageMax = pagination.DefaultMaxPerPage
	}
	return &Handler{service: service, messages: messages, perPageMax: perPageMax}
}

// Routes returns a [chi.Router] with the public post endpoints.
//
// The literal routes are registered before the catch-all "/{slug}" so that
// "search" and "summary" are never mistaken for slugs.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPosts)
	router.Get("/search", handler.searchPosts)
	router.Get("/summary", handler.postSummary)
	router.Get("/category/{slug}", handler.listByCategory)
	router.Get("/tag/{slug}", handler.listByTag)
	router.Get("/user/{id}", handler.listByAuthor)
	router.Get("/{slug}", handler.getPostBySlug)

	return router
}

// pageParams validates the pagination input for a listing endpoint. A
// malformed page or per_page becomes a 422 naming the offending fields.
func (handler *Handler) pageParams(request *http.Request) (pagination.Params, error) {
	params, err := pagination.FromRequestMax(request, handler.perPageMax)
	if err == nil {
		return params, nil
	}

	var invalid *pagination.InvalidParamsError
	if !errors.As(err, &invalid) {
		return pagination.Params{}, err
	}

	details := make([]apperr.FieldError, 0, len(invalid.Fields))
	for _, field := range invalid.Fields {
		details = append(details, apperr.FieldError{Field: field.Field, Message: field.Message})
	}
	return pagination.Params{}, apperr.ValidationError("Validation failed", details...)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params, err := handler.pageParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondPage(writer, request, page, params)
}

func (handler *Handler) searchPosts(writer http.ResponseWriter, request *http.Request) {
	params, err := handler.pageParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	queryValues := request.URL.Query()

	page, err := handler.service.Search(
		request.Context(),
		queryValues.Get("q"),
		queryValues.Get("category"),
		queryValues.Get("tag"),
		queryValues.Get("author"),
		params,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondPage(writer, request, page, params)
}

func (handler *Handler) postSummary(writer http.ResponseWriter, request *http.Request) {
	overview, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "posts.summary_retrieved"), map[string]any{
		"latest_posts":      overview.LatestPosts,
		"most_viewed_posts": overview.MostViewedPosts,
		"posts_by_category": overview.PostsByCategory,
	})
}

func (handler *Handler) listByCategory(writer http.ResponseWriter, request *http.Request) {
	params, err := handler.pageParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	slug := requestutil.Param(request, "slug")

	page, err := handler.service.ListByCategory(request.Context(), slug, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondPage(writer, request, page, params)
}

func (handler *Handler) listByTag(writer http.ResponseWriter, request *http.Request) {
	params, err := handler.pageParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	slug := requestutil.Param(request, "slug")

	page, err := handler.service.ListByTag(request.Context(), slug, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondPage(writer, request, page, params)
}

func (handler *Handler) listByAuthor(writer http.ResponseWriter, request *http.Request) {
	params, err := handler.pageParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	authorID := requestutil.Param(request, "id")

	page, err := handler.service.ListByAuthor(request.Context(), authorID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.respondPage(writer, request, page, params)
}

func (handler *Handler) getPostBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	found, err := handler.service.GetBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "posts.post_retrieved"), map[string]any{
		constants.FieldPost: found,
	})
}

// respondPage writes the shared listing envelope: posts + meta + links.
func (handler *Handler) respondPage(writer http.ResponseWriter, request *http.Request, page *Page, params pagination.Params) {
	meta := pagination.NewMeta(params.Page, params.PerPage, page.Total)
	links := pagination.NewLinks(request, meta)

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "posts.retrieved"), map[string]any{
		constants.FieldPosts: page.Posts,
		constants.FieldMeta:  meta,
		constants.FieldLinks: links,
	})
}
