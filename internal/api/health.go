// Copyright (c) 2026 Relato. All rights reserved.
// Author: dev@relato.app

package api

import (
	"log/slog"
	"net/http"

	"github.com/relatolabs/relato/internal/platform/respond"
)

// HealthDependencies carries one ping closure per backing service the
// readiness probe should verify. A nil closure skips that check.
type HealthDependencies struct {
	CheckDatabase func() error
	CheckCache    func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// dependencyStatus is one row of the /ready report.
type dependencyStatus struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers returns the /health and /ready handler funcs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness only proves the process is up, so it never touches a
// dependency.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{"status": "ok"})
}

// readiness pings every wired dependency and reports 503 with the
// per-dependency breakdown when any of them fails.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checks := []struct {
		name string
		ping func() error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	}

	report := make([]dependencyStatus, 0, len(checks))
	ready := true

	for _, check := range checks {
		if check.ping == nil {
			continue
		}

		status := dependencyStatus{Name: check.name, IsOK: true}
		if err := check.ping(); err != nil {
			status.IsOK = false
			status.Error = err.Error()
			ready = false
			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", check.name),
				slog.Any("error", err),
			)
		}
		report = append(report, status)
	}

	overall, httpStatus := "ready", http.StatusOK
	if !ready {
		overall, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, map[string]any{
		"status": overall,
		"checks": report,
	})
}
