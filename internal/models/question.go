package models

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is the platform-assigned difficulty of a question.
type Difficulty string

// Difficulty constants. DifficultyAny is only meaningful as a filter value.
const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the concrete difficulties in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsValid reports whether d is one of the concrete difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is an entry of the question bank. Questions without an Owner are
// shared with every user. Nil pointer fields and a nil Topics slice mean the
// value was never recorded.
type Question struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Platform    *string     `json:"platform"`
	PlatformRef *string     `json:"platform_ref"`
	Difficulty  *Difficulty `json:"difficulty"`
	Topics      []string    `json:"topics"`
	Owner       *uuid.UUID  `json:"owner,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// HasDifficulty reports whether the question is recorded with difficulty d.
func (q *Question) HasDifficulty(d Difficulty) bool {
	return q.Difficulty != nil && *q.Difficulty == d
}
