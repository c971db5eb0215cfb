package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsastreak/internal/db"
	"dsastreak/internal/models"
)

type fakeShared struct {
	questions []models.Question
	err       error
}

func (f *fakeShared) ListSharedQuestions(ctx context.Context) ([]models.Question, error) {
	return f.questions, f.err
}

type fakeQuestionStore struct {
	owned    map[uuid.UUID][]models.Question
	byID     map[uuid.UUID]models.Question
	ownedErr error
}

func (f *fakeQuestionStore) ListOwnedQuestions(ctx context.Context, userID uuid.UUID) ([]models.Question, error) {
	return f.owned[userID], f.ownedErr
}

func (f *fakeQuestionStore) GetQuestionByID(ctx context.Context, id, userID uuid.UUID) (*models.Question, error) {
	q, ok := f.byID[id]
	if !ok || (q.Owner != nil && *q.Owner != userID) {
		return nil, db.ErrQuestionNotFound
	}
	return &q, nil
}

func ptr[T any](v T) *T { return &v }

func questionApp(shared SharedCatalogue, store QuestionStore) *fiber.App {
	return newTestApp(func(app *fiber.App, auth fiber.Handler) {
		h := NewQuestionHandler(shared, store)
		app.Get("/api/questions", auth, h.List)
		app.Get("/api/questions/:id", auth, h.Get)
	})
}

func TestQuestionHandler_List(t *testing.T) {
	user := uuid.New()
	shared := &fakeShared{questions: []models.Question{
		{ID: uuid.New(), Title: "Two Sum", Platform: ptr("LeetCode"), Difficulty: ptr(models.DifficultyEasy), Topics: []string{"Array", "Hash Table"}},
		{ID: uuid.New(), Title: "Word Ladder", Platform: ptr("LeetCode"), Difficulty: ptr(models.DifficultyHard), Topics: []string{"Graph"}},
	}}
	store := &fakeQuestionStore{owned: map[uuid.UUID][]models.Question{
		user: {{ID: uuid.New(), Title: "Array Rotation", Owner: &user, Difficulty: ptr(models.DifficultyMedium), Topics: []string{"array"}}},
	}}
	app := questionApp(shared, store)

	status, env := doRequest(t, app, http.MethodGet, "/api/questions", user, "")
	require.Equal(t, fiber.StatusOK, status)
	var all models.QuestionBankResponse
	decodeData(t, env, &all)
	assert.Equal(t, 3, all.Count)
	assert.Equal(t, "Two Sum", all.Questions[0].Title)
	assert.Equal(t, "Array Rotation", all.Questions[1].Title)
	assert.Equal(t, []string{"Array", "Graph", "Hash Table"}, all.Topics)

	status, env = doRequest(t, app, http.MethodGet, "/api/questions?topic=ARRAY&difficulty=medium", user, "")
	require.Equal(t, fiber.StatusOK, status)
	var filtered models.QuestionBankResponse
	decodeData(t, env, &filtered)
	require.Equal(t, 1, filtered.Count)
	assert.Equal(t, "Array Rotation", filtered.Questions[0].Title)

	status, env = doRequest(t, app, http.MethodGet, "/api/questions?q=leet", uuid.New(), "")
	require.Equal(t, fiber.StatusOK, status)
	var other models.QuestionBankResponse
	decodeData(t, env, &other)
	assert.Equal(t, 2, other.Count, "owned questions are private")
}

func TestQuestionHandler_List_Invalid(t *testing.T) {
	app := questionApp(&fakeShared{}, &fakeQuestionStore{})

	status, env := doRequest(t, app, http.MethodGet, "/api/questions?difficulty=insane", uuid.New(), "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, env.Error, "difficulty")
}

func TestQuestionHandler_List_SourceErrors(t *testing.T) {
	status, _ := doRequest(t, questionApp(&fakeShared{err: errors.New("db down")}, &fakeQuestionStore{}),
		http.MethodGet, "/api/questions", uuid.New(), "")
	assert.Equal(t, fiber.StatusInternalServerError, status)

	status, _ = doRequest(t, questionApp(&fakeShared{}, &fakeQuestionStore{ownedErr: errors.New("db down")}),
		http.MethodGet, "/api/questions", uuid.New(), "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestQuestionHandler_Get(t *testing.T) {
	owner := uuid.New()
	private := models.Question{ID: uuid.New(), Title: "Mine", Owner: &owner}
	store := &fakeQuestionStore{byID: map[uuid.UUID]models.Question{private.ID: private}}
	app := questionApp(&fakeShared{}, store)

	status, env := doRequest(t, app, http.MethodGet, "/api/questions/"+private.ID.String(), owner, "")
	require.Equal(t, fiber.StatusOK, status)
	var got models.Question
	decodeData(t, env, &got)
	assert.Equal(t, "Mine", got.Title)

	status, _ = doRequest(t, app, http.MethodGet, "/api/questions/"+private.ID.String(), uuid.New(), "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/questions/not-a-uuid", owner, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
