// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

// Command api boots the Relato HTTP API server.
//
// Boot order: logger, configuration, PostgreSQL, Redis, migrations,
// token service, domain wiring, HTTP server with graceful shutdown.
// Everything is assembled here with plain constructor calls so the
// dependency graph can be read top to bottom.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relatolabs/relato/internal/api"
	"github.com/relatolabs/relato/internal/blog/category"
	"github.com/relatolabs/relato/internal/blog/post"
	"github.com/relatolabs/relato/internal/blog/tag"
	"github.com/relatolabs/relato/internal/nav/menu"
	"github.com/relatolabs/relato/internal/platform/config"
	"github.com/relatolabs/relato/internal/platform/constants"
	"github.com/relatolabs/relato/internal/platform/i18n"
	"github.com/relatolabs/relato/internal/platform/migration"
	pgstore "github.com/relatolabs/relato/internal/platform/postgres"
	redisstore "github.com/relatolabs/relato/internal/platform/redis"
	"github.com/relatolabs/relato/internal/platform/sec"
	"github.com/relatolabs/relato/internal/users/auth"
)

// bootTimeout bounds the whole dependency-connection phase. A wrong DSN
// should kill the process fast, not hang it.
const bootTimeout = 30 * time.Second

func main() {
	// The logger comes first so even config failures land as JSON.
	logger := newLogger(slog.LevelInfo)
	slog.SetDefault(logger)

	logger.Info("[Relato] service_initializing")

	cfg, err := config.Load()
	must(logger, err, "load configuration")

	if cfg.Debug {
		logger = newLogger(slog.LevelDebug)
		slog.SetDefault(logger)
		logger.Debug("debug_logging_enabled")
	}

	logger.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), bootTimeout)
	defer cancelBoot()

	pool, err := pgstore.NewPool(bootCtx, cfg.DatabaseURL, logger)
	must(logger, err, "connect to postgres")
	defer func() {
		logger.Info("closing postgres pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(bootCtx, cfg.RedisURL, logger)
	must(logger, err, "connect to redis")
	defer func() {
		logger.Info("closing redis client")
		if closeErr := rdb.Close(); closeErr != nil {
			logger.Error("redis close error", slog.Any("error", closeErr))
		}
	}()

	// Migrations are idempotent, so running them on every boot is safe.
	must(logger, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger), "run migrations")

	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(logger, err, "initialize jwt service")

	// Health probes get their own closures so the api package never
	// learns about pgx or go-redis directly.
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, logger)

	messages := i18n.Default()

	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokens := auth.NewResetTokenStore(rdb)
	verificationTokens := auth.NewVerificationTokenStore(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokens, verificationTokens, jwtSvc)
	authHandler := auth.NewHandler(authService, messages)

	postRepository := post.NewPostgresRepository(pool)
	postService := post.NewService(postRepository, logger, cfg.SearchExtended)
	postHandler := post.NewHandler(postService, messages, cfg.PostsPerPageMax)

	categoryRepository := category.NewPostgresRepository(pool)
	categoryService := category.NewService(categoryRepository, logger)
	categoryHandler := category.NewHandler(categoryService, messages)

	tagRepository := tag.NewPostgresRepository(pool)
	tagService := tag.NewService(tagRepository, logger)
	tagHandler := tag.NewHandler(tagService, messages)

	menuRepository := menu.NewPostgresRepository(pool)
	menuService := menu.NewService(menuRepository, logger, cfg.MenuIncludeInactive)
	menuHandler := menu.NewHandler(menuService, messages)

	serverCtx, cancelServer := context.WithCancel(context.Background())
	defer cancelServer()

	server := api.NewServer(serverCtx, cfg, logger, messages, jwtSvc, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Post:      postHandler,
		Category:  categoryHandler,
		Tag:       tagHandler,
		Menu:      menuHandler,
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	failed := make(chan error, 1)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			failed <- serveErr
		}
	}()

	select {
	case sig := <-stop:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	case serveErr := <-failed:
		logger.Error("server startup error", slog.Any("error", serveErr))
	}

	logger.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "relato"))
}

// must exits on error. Startup wiring only; everything after boot
// returns errors instead.
func must(logger *slog.Logger, err error, step string) {
	if err != nil {
		logger.Error("startup failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
