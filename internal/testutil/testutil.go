// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"dsastreak/internal/db"
)

// TestDB creates a test database connection and returns a cleanup function.
// Uses TEST_DATABASE_URL and skips the test when it is not set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString, "UTC")
	require.NoError(t, err, "failed to connect to test database")

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		require.NoError(t, err, "failed to run migrations")
	}

	cleanupTestData(ctx, database.Pool)
	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	// Delete in order to respect foreign keys
	pool.Exec(ctx, "DELETE FROM notes")
	pool.Exec(ctx, "DELETE FROM solves")
	pool.Exec(ctx, "DELETE FROM streaks")
	pool.Exec(ctx, "DELETE FROM questions")
}

// CreateTestQuestion creates a question and returns its ID. A nil owner makes
// it part of the shared catalogue.
func CreateTestQuestion(t *testing.T, database *db.DB, owner *uuid.UUID, title, difficulty string) uuid.UUID {
	t.Helper()

	var diff *string
	if difficulty != "" {
		diff = &difficulty
	}

	var id uuid.UUID
	err := database.Pool.QueryRow(context.Background(), `
		INSERT INTO questions (owner, title, difficulty)
		VALUES ($1, $2, $3)
		RETURNING id
	`, owner, title, diff).Scan(&id)
	require.NoError(t, err, "failed to create test question")

	return id
}

// CreateTestSolve records a solve at a chosen instant, so tests can build
// activity on past days. Solves must be created in chronological order for
// the streak trigger to count them.
func CreateTestSolve(t *testing.T, database *db.DB, userID, questionID uuid.UUID, solvedAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := database.Pool.QueryRow(context.Background(), `
		INSERT INTO solves (user_id, question_id, solved_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, questionID, solvedAt).Scan(&id)
	require.NoError(t, err, "failed to create test solve")

	return id
}
