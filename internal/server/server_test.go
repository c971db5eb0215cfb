package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsastreak/internal/config"
	"dsastreak/internal/db"
	"dsastreak/internal/models"
)

type stubPinger struct{ err error }

// stubSolves knows no questions.
type stubSolves struct{}

func (stubSolves) LogSolve(ctx context.Context, q *models.Question, s *models.Solve) error {
	return nil
}
func (stubSolves) CreateSolve(ctx context.Context, s *models.Solve) error { return nil }
func (stubSolves) GetQuestionByID(ctx context.Context, id, userID uuid.UUID) (*models.Question, error) {
	return nil, db.ErrQuestionNotFound
}
func (stubSolves) GetStreak(ctx context.Context, userID uuid.UUID) (*models.Streak, error) {
	return &models.Streak{}, nil
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func testConfig() *config.Config {
	return &config.Config{
		Env:                "test",
		BaseURL:            "http://localhost:3000",
		UserIDHeader:       "X-User-ID",
		RateLimitPerMinute: 100,
	}
}

func newTestServer(cfg *config.Config) *Server {
	s := New(cfg)
	s.RegisterRoutes(Deps{Health: stubPinger{}})
	return s
}

func readEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func TestServer_Healthz(t *testing.T) {
	s := newTestServer(testConfig())

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "ok", readEnvelope(t, resp)["status"])
}

func TestServer_ReadyzDatabaseDown(t *testing.T) {
	s := New(testConfig())
	s.RegisterRoutes(Deps{Health: stubPinger{err: errors.New("connection refused")}})

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_APIRequiresIdentity(t *testing.T) {
	s := newTestServer(testConfig())

	for _, path := range []string{"/api/dashboard", "/api/activity", "/api/questions", "/api/notes"} {
		resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodPost, "/api/solves", nil)
	req.Header.Set("X-User-ID", "not-a-uuid")
	resp, err := s.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid user identity", readEnvelope(t, resp)["error"])
}

func TestServer_NotFoundIsJSON(t *testing.T) {
	s := newTestServer(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := s.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := readEnvelope(t, resp)
	assert.Equal(t, "error", body["status"])
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(testConfig())

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerMinute = 2
	s := newTestServer(cfg)

	var last int
	for i := 0; i < 3; i++ {
		resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.NoError(t, err)
		last = resp.StatusCode
		resp.Body.Close()
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestServer_CORSAllowsIdentityHeader(t *testing.T) {
	s := newTestServer(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "X-User-ID")
	resp, err := s.App.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_QuestionSolvesRoute(t *testing.T) {
	s := New(testConfig())
	s.RegisterRoutes(Deps{Health: stubPinger{}, Solves: stubSolves{}})

	req := httptest.NewRequest(http.MethodPost, "/api/questions/"+uuid.NewString()+"/solves", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	resp, err := s.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "question not found", readEnvelope(t, resp)["error"], "served by the solve handler")
}
