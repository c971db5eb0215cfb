package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"dsastreak/internal/bank"
	"dsastreak/internal/db"
	"dsastreak/internal/middleware"
	"dsastreak/internal/models"
	"dsastreak/internal/validation"
)

// SolveStore records solves. *db.DB implements it.
type SolveStore interface {
	LogSolve(ctx context.Context, q *models.Question, s *models.Solve) error
	CreateSolve(ctx context.Context, s *models.Solve) error
	GetQuestionByID(ctx context.Context, id, userID uuid.UUID) (*models.Question, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (*models.Streak, error)
}

// solveDetails are the optional fields describing how a question was solved.
type solveDetails struct {
	Language     string `json:"language"`
	SolutionText string `json:"solution_text"`
	CodeSnippet  string `json:"code_snippet"`
}

// validate returns the message for a 400 response, or "".
func (d solveDetails) validate() string {
	if valid, msg := validation.ValidateLength("language", d.Language, validation.MaxTitleLength); !valid {
		return msg
	}
	if valid, msg := validation.ValidateLength("solution_text", d.SolutionText, validation.MaxContentLength); !valid {
		return msg
	}
	if valid, msg := validation.ValidateLength("code_snippet", d.CodeSnippet, validation.MaxCodeLength); !valid {
		return msg
	}
	return ""
}

func (d solveDetails) solve(userID uuid.UUID) *models.Solve {
	return &models.Solve{
		UserID:       userID,
		Language:     validation.Optional(d.Language),
		SolutionText: validation.Optional(d.SolutionText),
		CodeSnippet:  validation.Optional(d.CodeSnippet),
	}
}

// SolveHandler logs solved questions.
type SolveHandler struct {
	store SolveStore
}

// NewSolveHandler creates a new API solve handler.
func NewSolveHandler(store SolveStore) *SolveHandler {
	return &SolveHandler{store: store}
}

// Create records a solve of a question owned by the user, creating the
// question or refreshing its details, and returns the updated streak.
func (h *SolveHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Title       string   `json:"title"`
		Platform    string   `json:"platform"`
		PlatformRef string   `json:"platform_ref"`
		Difficulty  string   `json:"difficulty"`
		Topics      []string `json:"topics"`
		solveDetails
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	body.Title = strings.TrimSpace(body.Title)
	body.PlatformRef = strings.TrimSpace(body.PlatformRef)

	if valid, msg := validation.ValidateTitle(body.Title); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if body.PlatformRef != "" {
		if valid, msg := validation.ValidatePlatformRef(body.PlatformRef); !valid {
			return jsonError(c, fiber.StatusBadRequest, msg)
		}
	}
	if valid, msg := validation.ValidateLength("platform", body.Platform, validation.MaxTitleLength); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if msg := body.validate(); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	difficulty, err := bank.ParseDifficulty(body.Difficulty)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "difficulty must be one of Easy, Medium, Hard")
	}

	question := &models.Question{
		Owner:       &userID,
		Title:       body.Title,
		Platform:    validation.Optional(body.Platform),
		PlatformRef: validation.Optional(body.PlatformRef),
		Topics:      validation.CleanTopics(body.Topics),
	}
	if difficulty != models.DifficultyAny {
		question.Difficulty = &difficulty
	}

	solve := body.solve(userID)

	if err := h.store.LogSolve(c.Context(), question, solve); err != nil {
		slog.Error("failed to log solve", "user_id", userID, "title", question.Title, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to log solve")
	}

	streak, err := h.store.GetStreak(c.Context(), userID)
	if err != nil {
		slog.Error("failed to load streak", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to load streak")
	}

	slog.Info("solve logged", "user_id", userID, "question_id", question.ID, "streak", streak.CurrentStreak)

	return jsonCreated(c, models.SolveCreatedResponse{
		Solve:    *solve,
		Question: *question,
		Streak:   *streak,
	})
}

// CreateForQuestion records a solve of an existing shared or owned question,
// leaving the question itself untouched. The body is optional.
func (h *SolveHandler) CreateForQuestion(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid question id")
	}

	var body solveDetails
	if raw := c.Body(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}
	if msg := body.validate(); msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	question, err := h.store.GetQuestionByID(c.Context(), questionID, userID)
	if err != nil {
		if errors.Is(err, db.ErrQuestionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "question not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch question")
	}

	solve := body.solve(userID)
	solve.QuestionID = question.ID
	if err := h.store.CreateSolve(c.Context(), solve); err != nil {
		slog.Error("failed to log solve", "user_id", userID, "question_id", question.ID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to log solve")
	}

	streak, err := h.store.GetStreak(c.Context(), userID)
	if err != nil {
		slog.Error("failed to load streak", "user_id", userID, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to load streak")
	}

	slog.Info("solve logged", "user_id", userID, "question_id", question.ID, "streak", streak.CurrentStreak)

	return jsonCreated(c, models.SolveCreatedResponse{
		Solve:    *solve,
		Question: *question,
		Streak:   *streak,
	})
}
