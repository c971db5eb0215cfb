// Package dashboard assembles the dashboard and activity calendar from the
// activity sources and the pure window/level functions.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dsastreak/internal/activity"
	"dsastreak/internal/metrics"
	"dsastreak/internal/models"
)

// Defaults for window lengths and the recent solves list.
const (
	DefaultWindowDays   = 14
	DefaultCalendarDays = 365
	RecentSolvesLimit   = 7
)

// ActivitySource supplies a user's sparse daily solve counts from a day on.
type ActivitySource interface {
	GetDailyCounts(ctx context.Context, userID uuid.UUID, from activity.DateKey) ([]activity.DailyCount, error)
}

// StreakSource supplies the trigger-maintained streak row.
type StreakSource interface {
	GetStreak(ctx context.Context, userID uuid.UUID) (*models.Streak, error)
}

// RecentSource supplies a user's latest solves, newest first.
type RecentSource interface {
	GetRecentSolves(ctx context.Context, userID uuid.UUID, limit int) ([]models.RecentSolve, error)
}

// Source is everything the dashboard reads. *db.DB implements it.
type Source interface {
	ActivitySource
	StreakSource
	RecentSource
}

// Service builds dashboard payloads.
type Service struct {
	source   Source
	clock    func() time.Time
	location *time.Location
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock used to find today.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithLocation sets the time zone whose calendar defines today.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

// NewService creates a dashboard service.
func NewService(source Source, opts ...Option) *Service {
	s := &Service{source: source, clock: time.Now, location: time.UTC}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the anchor day for windows.
func (s *Service) Today() activity.DateKey {
	return activity.Normalize(s.clock().In(s.location))
}

// Dashboard returns the streak, a days-long activity window ending today and
// the most recent solves.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID, days int) (*models.Dashboard, error) {
	today := s.Today()
	window, err := s.window(ctx, userID, days, today)
	if err != nil {
		return nil, err
	}

	streak, err := s.source.GetStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	recent, err := s.source.GetRecentSolves(ctx, userID, RecentSolvesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent solves: %w", err)
	}

	levels, err := activity.Annotate(window)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Streak:      *streak,
		Today:       today,
		Window:      levels,
		WindowTotal: activity.Total(window),
		ActiveDays:  activity.ActiveDays(window),
		Recent:      recent,
	}, nil
}

// Calendar returns a days-long activity calendar ending today.
func (s *Service) Calendar(ctx context.Context, userID uuid.UUID, days int) (*models.Calendar, error) {
	today := s.Today()
	window, err := s.window(ctx, userID, days, today)
	if err != nil {
		return nil, err
	}

	levels, err := activity.Annotate(window)
	if err != nil {
		return nil, err
	}

	return &models.Calendar{
		From:  window[0].Day,
		To:    today,
		Days:  levels,
		Total: activity.Total(window),
	}, nil
}

// window fetches rows from the window's first day on, so the query cutoff and
// the window share one inclusive boundary.
func (s *Service) window(ctx context.Context, userID uuid.UUID, days int, today activity.DateKey) ([]activity.WindowEntry, error) {
	from, err := activity.WindowStart(today, days)
	if err != nil {
		return nil, err
	}

	sparse, err := s.source.GetDailyCounts(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily counts: %w", err)
	}

	metrics.RecordWindow(days)
	return activity.BuildWindow(sparse, days, today)
}
