package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dsastreak/internal/models"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateSolve inserts a solve. The streak trigger runs in the same statement.
func (d *DB) CreateSolve(ctx context.Context, s *models.Solve) error {
	return createSolve(ctx, d.Pool, s)
}

func createSolve(ctx context.Context, db querier, s *models.Solve) error {
	query := `
		INSERT INTO solves (user_id, question_id, solution_text, language, code_snippet)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, solved_at
	`
	return db.QueryRow(ctx, query,
		s.UserID,
		s.QuestionID,
		s.SolutionText,
		s.Language,
		s.CodeSnippet,
	).Scan(&s.ID, &s.SolvedAt)
}

// LogSolve upserts the user's question and records a solve of it in one
// transaction. q.Owner must be the solving user.
func (d *DB) LogSolve(ctx context.Context, q *models.Question, s *models.Solve) error {
	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		if err := upsertOwnedQuestion(ctx, tx, q); err != nil {
			return fmt.Errorf("failed to upsert question: %w", err)
		}
		s.QuestionID = q.ID
		if err := createSolve(ctx, tx, s); err != nil {
			return fmt.Errorf("failed to insert solve: %w", err)
		}
		return nil
	})
}

// GetRecentSolves returns the user's latest solves, newest first.
func (d *DB) GetRecentSolves(ctx context.Context, userID uuid.UUID, limit int) ([]models.RecentSolve, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT s.id, s.solved_at, q.title, q.platform, q.difficulty, q.platform_ref, q.topics
		FROM solves s
		JOIN questions q ON q.id = s.question_id
		WHERE s.user_id = $1
		ORDER BY s.solved_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := make([]models.RecentSolve, 0, limit)
	for rows.Next() {
		var r models.RecentSolve
		var difficulty *string
		if err := rows.Scan(
			&r.SolveID,
			&r.SolvedAt,
			&r.Title,
			&r.Platform,
			&difficulty,
			&r.PlatformRef,
			&r.Topics,
		); err != nil {
			return nil, err
		}
		r.Difficulty = difficultyFromColumn(difficulty)
		recent = append(recent, r)
	}
	return recent, rows.Err()
}
