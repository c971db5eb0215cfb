package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"dsastreak/internal/models"
	"dsastreak/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool. Every connection uses timezone
// as its session TimeZone, so solved_at::date yields the user's calendar day.
func New(ctx context.Context, connString, timezone string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if timezone != "" {
		cfg.ConnConfig.RuntimeParams["timezone"] = timezone
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedQuestions inserts shared questions. Titles that already exist are left
// untouched.
func (d *DB) SeedQuestions(ctx context.Context, questions []models.Question) (int, error) {
	query := `
		INSERT INTO questions (title, platform, platform_ref, difficulty, topics)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (COALESCE(owner, '00000000-0000-0000-0000-000000000000'::uuid), title) DO NOTHING
	`

	inserted := 0
	for _, q := range questions {
		tag, err := d.Pool.Exec(ctx, query, q.Title, q.Platform, q.PlatformRef, difficultyArg(q.Difficulty), q.Topics)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed question %q: %w", q.Title, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
