package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dsastreak/internal/middleware"
)

const testUserHeader = "X-User-ID"

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// newTestApp returns an app whose routes run behind the header auth middleware.
func newTestApp(register func(app *fiber.App, auth fiber.Handler)) *fiber.App {
	app := fiber.New()
	register(app, middleware.NewAuthMiddleware(testUserHeader).RequireAuth)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, user uuid.UUID, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != uuid.Nil {
		req.Header.Set(testUserHeader, user.String())
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, into))
}
