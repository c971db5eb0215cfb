package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dsastreak/internal/handlers/api"
	"dsastreak/internal/middleware"
)

// Deps are the backends the routes serve from. In production the database
// fills every store and the Redis-backed catalogue fills Shared.
type Deps struct {
	Health    api.Pinger
	Dashboard api.DashboardService
	Shared    api.SharedCatalogue
	Questions api.QuestionStore
	Solves    api.SolveStore
	Notes     api.NoteStore
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg.UserIDHeader)

	probeHandler := api.NewProbeHandler(deps.Health)
	dashboardHandler := api.NewDashboardHandler(deps.Dashboard)
	questionHandler := api.NewQuestionHandler(deps.Shared, deps.Questions)
	solveHandler := api.NewSolveHandler(deps.Solves)
	noteHandler := api.NewNoteHandler(deps.Notes)

	// Operational routes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes - identity comes from the proxy header
	apiGroup := s.App.Group("/api", authMiddleware.RequireAuth)

	apiGroup.Get("/dashboard", dashboardHandler.Dashboard)
	apiGroup.Get("/activity", dashboardHandler.Activity)

	apiGroup.Get("/questions", questionHandler.List)
	apiGroup.Get("/questions/:id", questionHandler.Get)

	apiGroup.Post("/solves", solveHandler.Create)
	apiGroup.Post("/questions/:id/solves", solveHandler.CreateForQuestion)

	apiGroup.Get("/notes", noteHandler.List)
	apiGroup.Get("/notes/:id", noteHandler.Get)
	apiGroup.Post("/notes", noteHandler.Create)
	apiGroup.Put("/notes/:id", noteHandler.Update)
	apiGroup.Delete("/notes/:id", noteHandler.Delete)
}
