// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

/*
Package api assembles the chi router, the middleware chain and every
domain handler into one runnable [http.Server].

It is the composition root of the HTTP transport: only this package and
cmd/api touch net/http server primitives, everything below it deals in
handlers and services.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/relatolabs/relato/internal/blog/category"
	"github.com/relatolabs/relato/internal/blog/post"
	"github.com/relatolabs/relato/internal/blog/tag"
	"github.com/relatolabs/relato/internal/nav/menu"
	"github.com/relatolabs/relato/internal/platform/config"
	"github.com/relatolabs/relato/internal/platform/constants"
	"github.com/relatolabs/relato/internal/platform/i18n"
	"github.com/relatolabs/relato/internal/platform/middleware"
	"github.com/relatolabs/relato/internal/users/auth"
)

// Server pairs the configured router with its http.Server. Built once
// in cmd/api with every dependency passed in.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers lists the handler sets the router mounts. A new domain adds
// a field here and a Mount call below; nothing else in this package
// changes.
type Handlers struct {
	// Liveness answers /health with 200 whenever the process runs.
	Liveness http.HandlerFunc

	// Readiness answers /ready with 200 once every dependency is reachable.
	Readiness http.HandlerFunc

	// Auth covers registration, login and the whole session lifecycle.
	Auth *auth.Handler

	// Post serves the published article catalogue and search.
	Post *post.Handler

	// Category exposes the editorial taxonomy.
	Category *category.Handler

	// Tag exposes the free-form article labels.
	Tag *tag.Handler

	// Menu serves the hierarchical navigation trees.
	Menu *menu.Handler
}

// NewServer builds the router, applies the middleware chain in order
// and mounts every route group under the versioned prefix.
func NewServer(appContext context.Context, cfg *config.Config, log *slog.Logger, messages *i18n.Bundle, verifier middleware.TokenVerifier, handlers Handlers) *Server {
	router := chi.NewRouter()

	// Order matters: correlation and logging wrap everything, the
	// timeout fires before any domain work, and authentication runs
	// late enough to be logged and rate limited like any request.
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(log))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.Locale(messages))
	router.Use(middleware.RateLimit(appContext))
	router.Use(middleware.PanicRecovery(log))
	router.Use(middleware.Authenticate(verifier))
	router.Use(middleware.CORS(cfg))
	router.Use(chimw.CleanPath)

	// Probes stay outside /api/v1 and outside authentication so the
	// orchestrator can always reach them.
	router.Get("/health", handlers.Liveness)
	router.Get("/ready", handlers.Readiness)

	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", handlers.Auth.Routes())
		api.Mount("/posts", handlers.Post.Routes())
		api.Mount("/categories", handlers.Category.Routes())
		api.Mount("/tags", handlers.Tag.Routes())
		api.Mount("/menus", handlers.Menu.Routes())
	})

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// ListenAndServe blocks until the server closes or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests to finish.
func (s *Server) Shutdown(timeout time.Duration) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
