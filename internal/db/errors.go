package db

import "errors"

// Domain-level database error sentinels.
var (
	// Question errors
	ErrQuestionNotFound = errors.New("question not found")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")
)
