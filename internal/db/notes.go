package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dsastreak/internal/models"
)

const noteColumns = `id, user_id, title, content, topics, pinned, created_at, updated_at`

func scanNote(row pgx.Row) (*models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Content,
		&n.Topics,
		&n.Pinned,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListNotes returns the user's notes, pinned first, then most recently updated.
func (d *DB) ListNotes(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1
		ORDER BY pinned DESC, updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// GetNote retrieves one of the user's notes.
func (d *DB) GetNote(ctx context.Context, id, userID uuid.UUID) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`
	return scanNote(d.Pool.QueryRow(ctx, query, id, userID))
}

// CreateNote inserts a note for n.UserID and fills in its generated fields.
func (d *DB) CreateNote(ctx context.Context, n *models.Note) error {
	query := `
		INSERT INTO notes (user_id, title, content, topics, pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return d.Pool.QueryRow(ctx, query, n.UserID, n.Title, n.Content, n.Topics, n.Pinned).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// UpdateNote overwrites the editable fields of one of the user's notes.
func (d *DB) UpdateNote(ctx context.Context, n *models.Note) error {
	query := `
		UPDATE notes
		SET title = $1, content = $2, topics = $3, pinned = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query, n.Title, n.Content, n.Topics, n.Pinned, n.ID, n.UserID).
		Scan(&n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoteNotFound
	}
	return err
}

// DeleteNote removes one of the user's notes.
func (d *DB) DeleteNote(ctx context.Context, id, userID uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNoteNotFound
	}
	return nil
}
