package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/clynicx/portal-service/internal/core/ports"
)

const readinessTimeout = 5 * time.Second

// pinger is satisfied by the session slot store and the directory.
type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	slots     ports.SlotStore
	directory ports.ProfileDirectory
	startTime time.Time
	version   string
	logger    *zap.Logger
}

func NewHealthHandler(slots ports.SlotStore, directory ports.ProfileDirectory, version string, logger *zap.Logger) *HealthHandler {
	if version == "" {
		version = "unknown"
	}
	return &HealthHandler{
		slots:     slots,
		directory: directory,
		startTime: time.Now(),
		version:   version,
		logger:    logger,
	}
}

// HealthResponse follows Kubernetes/OpenShift health check conventions
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

type ReadinessResponse struct {
	Status string           `json:"status"`
	Checks map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health is the liveness check: the process is up and serving.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    map[string]Check{"process": {Status: "UP"}},
	})
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}

// Ready checks the session backend and the profile directory.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := map[string]Check{
		"session":   h.check(ctx, h.slots, "Cannot reach session backend"),
		"directory": h.check(ctx, h.directory, "Cannot reach profile directory"),
	}

	status, httpStatus := "UP", http.StatusOK
	for _, c := range checks {
		if c.Status != "UP" {
			status, httpStatus = "DOWN", http.StatusServiceUnavailable
		}
	}

	respondJSON(w, h.logger, httpStatus, ReadinessResponse{Status: status, Checks: checks})
}

func (h *HealthHandler) check(ctx context.Context, dep pinger, failure string) Check {
	if err := dep.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed", zap.String("check", failure), zap.Error(err))
		return Check{Status: "DOWN", Message: failure}
	}
	return Check{Status: "UP"}
}
