package api

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"dsastreak/internal/db"
	"dsastreak/internal/middleware"
	"dsastreak/internal/models"
	"dsastreak/internal/validation"
)

// NoteStore persists study notes. *db.DB implements it.
type NoteStore interface {
	ListNotes(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	GetNote(ctx context.Context, id, userID uuid.UUID) (*models.Note, error)
	CreateNote(ctx context.Context, n *models.Note) error
	UpdateNote(ctx context.Context, n *models.Note) error
	DeleteNote(ctx context.Context, id, userID uuid.UUID) error
}

// NoteHandler handles note CRUD operations via JSON API.
type NoteHandler struct {
	store NoteStore
}

// NewNoteHandler creates a new API note handler.
func NewNoteHandler(store NoteStore) *NoteHandler {
	return &NoteHandler{store: store}
}

type noteBody struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Topics  []string `json:"topics"`
	Pinned  bool     `json:"pinned"`
}

// parseNote decodes and validates a note body. On failure it returns the
// message for a 400 response.
func parseNote(raw []byte) (*noteBody, string) {
	var body noteBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, "invalid request body"
	}

	body.Title = strings.TrimSpace(body.Title)
	if valid, msg := validation.ValidateTitle(body.Title); !valid {
		return nil, msg
	}
	if strings.TrimSpace(body.Content) == "" {
		return nil, "content is required"
	}
	if valid, msg := validation.ValidateLength("content", body.Content, validation.MaxContentLength); !valid {
		return nil, msg
	}
	body.Topics = validation.CleanTopics(body.Topics)
	return &body, ""
}

// List returns the user's notes, pinned first.
func (h *NoteHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notes, err := h.store.ListNotes(c.Context(), userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch notes")
	}

	return jsonSuccess(c, notes)
}

// Get returns one of the user's notes.
func (h *NoteHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid note id")
	}

	note, err := h.store.GetNote(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch note")
	}

	return jsonSuccess(c, note)
}

// Create adds a note.
func (h *NoteHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	body, msg := parseNote(c.Body())
	if body == nil {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	note := &models.Note{
		UserID:  userID,
		Title:   body.Title,
		Content: body.Content,
		Topics:  body.Topics,
		Pinned:  body.Pinned,
	}
	if err := h.store.CreateNote(c.Context(), note); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create note")
	}

	return jsonCreated(c, note)
}

// Update replaces the editable fields of a note.
func (h *NoteHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid note id")
	}

	body, msg := parseNote(c.Body())
	if body == nil {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	note := &models.Note{
		ID:      id,
		UserID:  userID,
		Title:   body.Title,
		Content: body.Content,
		Topics:  body.Topics,
		Pinned:  body.Pinned,
	}
	if err := h.store.UpdateNote(c.Context(), note); err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update note")
	}

	return jsonSuccess(c, note)
}

// Delete removes a note.
func (h *NoteHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid note id")
	}

	if err := h.store.DeleteNote(c.Context(), id, userID); err != nil {
		if errors.Is(err, db.ErrNoteNotFound) {
			return jsonError(c, fiber.StatusNotFound, "note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete note")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}
