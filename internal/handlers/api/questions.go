package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"dsastreak/internal/bank"
	"dsastreak/internal/db"
	"dsastreak/internal/metrics"
	"dsastreak/internal/middleware"
	"dsastreak/internal/models"
	"dsastreak/internal/validation"
)

// SharedCatalogue lists the questions every user sees. *cache.Catalogue and
// *db.DB implement it.
type SharedCatalogue interface {
	ListSharedQuestions(ctx context.Context) ([]models.Question, error)
}

// QuestionStore reads the questions a user owns.
type QuestionStore interface {
	ListOwnedQuestions(ctx context.Context, userID uuid.UUID) ([]models.Question, error)
	GetQuestionByID(ctx context.Context, id, userID uuid.UUID) (*models.Question, error)
}

// QuestionHandler serves the question bank.
type QuestionHandler struct {
	shared SharedCatalogue
	store  QuestionStore
}

// NewQuestionHandler creates a new API question handler.
func NewQuestionHandler(shared SharedCatalogue, store QuestionStore) *QuestionHandler {
	return &QuestionHandler{shared: shared, store: store}
}

// List filters the user's catalogue by text, difficulty and topic.
func (h *QuestionHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	criteria := bank.Criteria{
		Text:  c.Query("q", ""),
		Topic: c.Query("topic", ""),
	}
	if valid, msg := validation.ValidateSearchText("q", criteria.Text); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateSearchText("topic", criteria.Topic); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	difficulty, err := bank.ParseDifficulty(c.Query("difficulty", ""))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "difficulty must be one of Easy, Medium, Hard")
	}
	criteria.Difficulty = difficulty

	shared, err := h.shared.ListSharedQuestions(c.Context())
	if err != nil {
		slog.Error("failed to load shared catalogue", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch questions")
	}
	owned, err := h.store.ListOwnedQuestions(c.Context(), userID)
	if err != nil {
		slog.Error("failed to load owned questions", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch questions")
	}

	catalogue := bank.Combine(shared, owned)
	matches := bank.Filter(catalogue, criteria)
	metrics.RecordSearch(len(matches))

	return jsonSuccess(c, models.QuestionBankResponse{
		Questions: matches,
		Count:     len(matches),
		Topics:    bank.DistinctTopics(catalogue),
	})
}

// Get returns a single shared or owned question.
func (h *QuestionHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid question id")
	}

	question, err := h.store.GetQuestionByID(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, db.ErrQuestionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "question not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch question")
	}

	return jsonSuccess(c, question)
}
