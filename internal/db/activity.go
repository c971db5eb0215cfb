package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dsastreak/internal/activity"
	"dsastreak/internal/models"
)

// GetDailyCounts returns the user's per-day solve counts for every day on or
// after from. Days without solves are absent.
func (d *DB) GetDailyCounts(ctx context.Context, userID uuid.UUID, from activity.DateKey) ([]activity.DailyCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT to_char(day, 'YYYY-MM-DD'), solve_count
		FROM vw_daily_solve_counts
		WHERE user_id = $1 AND day >= $2::date
		ORDER BY day ASC
	`, userID, from.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]activity.DailyCount, 0)
	for rows.Next() {
		var day string
		var c activity.DailyCount
		if err := rows.Scan(&day, &c.Count); err != nil {
			return nil, err
		}
		c.Day = activity.DateKey(day)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// GetStreak returns the user's streak row. A user without solves gets the
// zero streak rather than an error.
func (d *DB) GetStreak(ctx context.Context, userID uuid.UUID) (*models.Streak, error) {
	var s models.Streak
	var last *string
	err := d.Pool.QueryRow(ctx, `
		SELECT current_streak, longest_streak, to_char(last_solved_date, 'YYYY-MM-DD')
		FROM streaks
		WHERE user_id = $1
	`, userID).Scan(&s.CurrentStreak, &s.LongestStreak, &last)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.Streak{}, nil
	}
	if err != nil {
		return nil, err
	}
	if last != nil {
		key := activity.DateKey(*last)
		s.LastSolvedDate = &key
	}
	return &s, nil
}
