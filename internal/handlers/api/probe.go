package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether a dependency is reachable. *db.DB implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(database Pinger) *ProbeHandler {
	return &ProbeHandler{db: database, timeout: 2 * time.Second}
}

// Liveness handles the /healthz endpoint. Returns 200 OK if the process is serving.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{"alive": true})
}

// Readiness handles the /readyz endpoint. Returns 200 OK if the database is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("readiness check failed", "error", err)
		return jsonError(c, fiber.StatusServiceUnavailable, "database unavailable")
	}

	return jsonSuccess(c, fiber.Map{"database": "ok"})
}
