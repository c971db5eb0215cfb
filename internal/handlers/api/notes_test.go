package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsastreak/internal/db"
	"dsastreak/internal/models"
)

type memoryNotes struct {
	notes map[uuid.UUID]models.Note
}

func newMemoryNotes() *memoryNotes {
	return &memoryNotes{notes: map[uuid.UUID]models.Note{}}
}

func (m *memoryNotes) ListNotes(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	out := []models.Note{}
	for _, n := range m.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memoryNotes) GetNote(ctx context.Context, id, userID uuid.UUID) (*models.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.UserID != userID {
		return nil, db.ErrNoteNotFound
	}
	return &n, nil
}

func (m *memoryNotes) CreateNote(ctx context.Context, n *models.Note) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	m.notes[n.ID] = *n
	return nil
}

func (m *memoryNotes) UpdateNote(ctx context.Context, n *models.Note) error {
	existing, ok := m.notes[n.ID]
	if !ok || existing.UserID != n.UserID {
		return db.ErrNoteNotFound
	}
	n.CreatedAt = existing.CreatedAt
	n.UpdatedAt = time.Now()
	m.notes[n.ID] = *n
	return nil
}

func (m *memoryNotes) DeleteNote(ctx context.Context, id, userID uuid.UUID) error {
	existing, ok := m.notes[id]
	if !ok || existing.UserID != userID {
		return db.ErrNoteNotFound
	}
	delete(m.notes, id)
	return nil
}

func noteApp(store NoteStore) *fiber.App {
	return newTestApp(func(app *fiber.App, auth fiber.Handler) {
		h := NewNoteHandler(store)
		app.Get("/api/notes", auth, h.List)
		app.Get("/api/notes/:id", auth, h.Get)
		app.Post("/api/notes", auth, h.Create)
		app.Put("/api/notes/:id", auth, h.Update)
		app.Delete("/api/notes/:id", auth, h.Delete)
	})
}

func TestNoteHandler_Lifecycle(t *testing.T) {
	store := newMemoryNotes()
	app := noteApp(store)
	user := uuid.New()

	status, env := doRequest(t, app, http.MethodPost, "/api/notes", user,
		`{"title":" Sliding window ","content":"expand right, shrink left","topics":["Two Pointers",""]}`)
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	var created models.Note
	decodeData(t, env, &created)
	assert.Equal(t, "Sliding window", created.Title)
	assert.Equal(t, []string{"Two Pointers"}, created.Topics)
	assert.Equal(t, user, created.UserID)

	status, env = doRequest(t, app, http.MethodPut, "/api/notes/"+created.ID.String(), user,
		`{"title":"Sliding window","content":"track counts in a map","pinned":true}`)
	require.Equal(t, fiber.StatusOK, status, env.Error)
	var updated models.Note
	decodeData(t, env, &updated)
	assert.True(t, updated.Pinned)
	assert.Equal(t, "track counts in a map", updated.Content)

	status, env = doRequest(t, app, http.MethodGet, "/api/notes/"+created.ID.String(), user, "")
	require.Equal(t, fiber.StatusOK, status, env.Error)
	var fetched models.Note
	decodeData(t, env, &fetched)
	assert.Equal(t, "track counts in a map", fetched.Content)

	status, env = doRequest(t, app, http.MethodGet, "/api/notes", user, "")
	require.Equal(t, fiber.StatusOK, status)
	var listed []models.Note
	decodeData(t, env, &listed)
	assert.Len(t, listed, 1)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/notes/"+created.ID.String(), user, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, store.notes)
}

func TestNoteHandler_OtherUsersNotes(t *testing.T) {
	store := newMemoryNotes()
	app := noteApp(store)
	owner := uuid.New()

	_, env := doRequest(t, app, http.MethodPost, "/api/notes", owner, `{"title":"Heaps","content":"k largest"}`)
	var created models.Note
	decodeData(t, env, &created)

	intruder := uuid.New()
	status, _ := doRequest(t, app, http.MethodGet, "/api/notes/"+created.ID.String(), intruder, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = doRequest(t, app, http.MethodPut, "/api/notes/"+created.ID.String(), intruder, `{"title":"x","content":"y"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = doRequest(t, app, http.MethodDelete, "/api/notes/"+created.ID.String(), intruder, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Len(t, store.notes, 1)
}

func TestNoteHandler_Invalid(t *testing.T) {
	app := noteApp(newMemoryNotes())
	user := uuid.New()

	status, env := doRequest(t, app, http.MethodPost, "/api/notes", user, `{"title":"Tries"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "content is required", env.Error)

	status, env = doRequest(t, app, http.MethodPost, "/api/notes", user, `{"content":"prefix tree"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "title is required", env.Error)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/notes/nope", user, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
