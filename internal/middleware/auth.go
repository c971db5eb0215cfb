package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// userIDKey is the Locals key holding the authenticated user's id.
const userIDKey = "user_id"

// AuthMiddleware identifies users from a header set by the authenticating
// proxy in front of the service. The service never sees credentials.
type AuthMiddleware struct {
	header string
}

// NewAuthMiddleware creates a new auth middleware reading the given header.
func NewAuthMiddleware(header string) *AuthMiddleware {
	return &AuthMiddleware{header: header}
}

// RequireAuth rejects requests without a valid user id header.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get(m.header))
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "authentication required",
		})
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid user identity",
		})
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// UserID returns the user id stored by RequireAuth.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok
}
