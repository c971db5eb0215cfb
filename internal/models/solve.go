package models

import (
	"time"

	"github.com/google/uuid"
)

// Solve records one solved problem by a user.
type Solve struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	QuestionID   uuid.UUID `json:"question_id"`
	Language     *string   `json:"language"`
	SolutionText *string   `json:"solution_text"`
	CodeSnippet  *string   `json:"code_snippet"`
	SolvedAt     time.Time `json:"solved_at"`
}

// RecentSolve is a solve joined with its question, as listed on the dashboard.
type RecentSolve struct {
	SolveID     uuid.UUID   `json:"solve_id"`
	SolvedAt    time.Time   `json:"solved_at"`
	Title       string      `json:"title"`
	Platform    *string     `json:"platform"`
	Difficulty  *Difficulty `json:"difficulty"`
	PlatformRef *string     `json:"platform_ref"`
	Topics      []string    `json:"topics"`
}
