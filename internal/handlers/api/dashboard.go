package api

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"dsastreak/internal/dashboard"
	"dsastreak/internal/middleware"
	"dsastreak/internal/models"
	"dsastreak/internal/validation"
)

// DashboardService builds the dashboard payloads. *dashboard.Service implements it.
type DashboardService interface {
	Dashboard(ctx context.Context, userID uuid.UUID, days int) (*models.Dashboard, error)
	Calendar(ctx context.Context, userID uuid.UUID, days int) (*models.Calendar, error)
}

// DashboardHandler serves the dashboard and activity calendar.
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler creates a new API dashboard handler.
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Dashboard returns the streak, the recent activity window and the latest solves.
func (h *DashboardHandler) Dashboard(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, ok := parseDays(c, dashboard.DefaultWindowDays)
	if !ok {
		return nil
	}

	result, err := h.svc.Dashboard(c.Context(), userID, days)
	if err != nil {
		slog.Error("failed to build dashboard", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}

	return jsonSuccess(c, result)
}

// Activity returns the per-day activity calendar.
func (h *DashboardHandler) Activity(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, ok := parseDays(c, dashboard.DefaultCalendarDays)
	if !ok {
		return nil
	}

	result, err := h.svc.Calendar(c.Context(), userID, days)
	if err != nil {
		slog.Error("failed to build activity calendar", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to build activity calendar")
	}

	return jsonSuccess(c, result)
}

// parseDays reads the days query parameter. On a bad value it writes the 400
// response itself and reports false.
func parseDays(c fiber.Ctx, def int) (int, bool) {
	raw := c.Query("days", "")
	if raw == "" {
		return def, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		_ = jsonError(c, fiber.StatusBadRequest, "days must be a number")
		return 0, false
	}
	if valid, msg := validation.ValidateWindowDays(days); !valid {
		_ = jsonError(c, fiber.StatusBadRequest, msg)
		return 0, false
	}
	return days, true
}
