// Package activity turns sparse per-day solve counts into dense recent-activity
// series and display levels. Everything here is pure and safe for concurrent use.
package activity

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned when a caller passes a negative size or count,
// or a malformed date key.
var ErrInvalidArgument = errors.New("invalid argument")

// dateLayout is the canonical DateKey format.
const dateLayout = "2006-01-02"

// DateKey identifies a calendar day as YYYY-MM-DD. Keys compare and sort
// correctly as plain strings.
type DateKey string

// Normalize returns the calendar day of t in t's own location.
func Normalize(t time.Time) DateKey {
	return DateKey(t.Format(dateLayout))
}

// ParseDateKey accepts either a YYYY-MM-DD day or an RFC 3339 timestamp and
// returns the canonical key. Timestamps keep their own offset, so
// 2024-01-01T23:30:00-05:00 is 2024-01-01.
func ParseDateKey(s string) (DateKey, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Normalize(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Normalize(t), nil
	}
	return "", fmt.Errorf("%w: malformed date %q", ErrInvalidArgument, s)
}

// Offset returns k shifted by deltaDays calendar days. Negative deltas move
// into the past.
func Offset(k DateKey, deltaDays int) (DateKey, error) {
	t, err := k.Time()
	if err != nil {
		return "", err
	}
	return Normalize(t.AddDate(0, 0, deltaDays)), nil
}

// Time returns midnight UTC of the day k names. Day arithmetic on UTC
// midnights is immune to DST transitions.
func (k DateKey) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date key %q", ErrInvalidArgument, string(k))
	}
	return t, nil
}

// Valid reports whether k is a well-formed key.
func (k DateKey) Valid() bool {
	_, err := k.Time()
	return err == nil
}

func (k DateKey) String() string {
	return string(k)
}
