package db

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dsastreak/internal/models"
)

// questionColumns is the standard column list for question queries.
const questionColumns = `id, owner, title, platform, platform_ref, difficulty, topics, created_at`

// questionOrder lists Easy before Medium before Hard, unrated last.
const questionOrder = `
	ORDER BY CASE difficulty WHEN 'Easy' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Hard' THEN 3 ELSE 4 END,
		title ASC`

// difficultyArg converts an optional difficulty to a nullable text argument.
func difficultyArg(d *models.Difficulty) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}

// difficultyFromColumn converts a nullable text column to an optional difficulty.
func difficultyFromColumn(s *string) *models.Difficulty {
	if s == nil {
		return nil
	}
	d := models.Difficulty(*s)
	return &d
}

// scanQuestion scans a row into a Question struct.
func scanQuestion(row pgx.Row) (*models.Question, error) {
	var q models.Question
	var difficulty *string
	err := row.Scan(
		&q.ID,
		&q.Owner,
		&q.Title,
		&q.Platform,
		&q.PlatformRef,
		&difficulty,
		&q.Topics,
		&q.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	q.Difficulty = difficultyFromColumn(difficulty)
	return &q, nil
}

// scanQuestions scans multiple rows into a slice of Questions.
func scanQuestions(rows pgx.Rows) ([]models.Question, error) {
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}

	return questions, rows.Err()
}

// ListSharedQuestions returns every question without an owner.
func (d *DB) ListSharedQuestions(ctx context.Context) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE owner IS NULL` + questionOrder
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// ListOwnedQuestions returns the questions a user added themselves.
func (d *DB) ListOwnedQuestions(ctx context.Context, userID uuid.UUID) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE owner = $1` + questionOrder
	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// GetQuestionByID retrieves a question visible to userID: shared or owned.
func (d *DB) GetQuestionByID(ctx context.Context, id, userID uuid.UUID) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1 AND (owner IS NULL OR owner = $2)`
	return scanQuestion(d.Pool.QueryRow(ctx, query, id, userID))
}

// upsertOwnedQuestion inserts a question owned by q.Owner, or refreshes the
// details of the owner's existing question with the same title. q.ID and
// q.CreatedAt are filled in.
func upsertOwnedQuestion(ctx context.Context, db querier, q *models.Question) error {
	query := `
		INSERT INTO questions (owner, title, platform, platform_ref, difficulty, topics)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (COALESCE(owner, '00000000-0000-0000-0000-000000000000'::uuid), title) DO UPDATE
		SET platform = EXCLUDED.platform,
			platform_ref = EXCLUDED.platform_ref,
			difficulty = EXCLUDED.difficulty,
			topics = EXCLUDED.topics
		RETURNING id, created_at
	`
	q.Title = strings.TrimSpace(q.Title)
	return db.QueryRow(ctx, query,
		q.Owner,
		q.Title,
		q.Platform,
		q.PlatformRef,
		difficultyArg(q.Difficulty),
		q.Topics,
	).Scan(&q.ID, &q.CreatedAt)
}

// CountSolvesByDifficulty returns the number of solves per question
// difficulty across all users. Unrated questions are reported as "unrated".
func (d *DB) CountSolvesByDifficulty(ctx context.Context) (map[string]int64, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT COALESCE(q.difficulty, 'unrated'), COUNT(*)
		FROM solves s
		JOIN questions q ON q.id = s.question_id
		GROUP BY 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var difficulty string
		var count int64
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, err
		}
		counts[difficulty] = count
	}
	return counts, rows.Err()
}
