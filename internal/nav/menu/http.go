// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/relatolabs/relato/internal/platform/apperr"
	"github.com/relatolabs/relato/internal/platform/constants"
	"github.com/relatolabs/relato/internal/platform/ctxutil"
	"github.com/relatolabs/relato/internal/platform/i18n"
	requestutil "github.com/relatolabs/relato/internal/platform/request"
	"github.com/relatolabs/relato/internal/platform/respond"
	"github.com/relatolabs/relato/pkg/convert"
)

type Handler struct {
	service  *Service
	messages *i18n.Bundle
}

func NewHandler(service *Service, messages *i18n.Bundle) *Handler {
	return &Handler{service: service, messages: messages}
}

// Routes returns a [chi.Router] with the public menu endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{menuId}", handler.getMenuTree)
	return router
}

func (handler *Handler) getMenuTree(writer http.ResponseWriter, request *http.Request) {
	menuID := convert.ToInt64(requestutil.Param(request, "menuId"))
	if menuID < 1 {
		respond.Error(writer, request, apperr.NotFound("Menu"))
		return
	}

	items, err := handler.service.GetMenuTree(request.Context(), menuID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	locale := ctxutil.GetLocale(request.Context())
	respond.Data(writer, handler.messages.T(locale, "menu.items_retrieved"), map[string]any{
		constants.FieldItems: items,
	})
}
