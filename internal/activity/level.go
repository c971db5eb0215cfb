package activity

import "fmt"

// Level is a display intensity bucket for a day's solve count.
type Level int

// Activity levels, from no solves to a very busy day.
const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelMax
)

// CalendarDay is a window entry annotated with its display level.
type CalendarDay struct {
	Day   DateKey `json:"day"`
	Count int     `json:"count"`
	Level Level   `json:"level"`
}

// Classify maps a solve count to its level: 0, 1-2, 3-5, 6-10, above 10.
func Classify(count int) (Level, error) {
	switch {
	case count < 0:
		return LevelNone, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	case count == 0:
		return LevelNone, nil
	case count <= 2:
		return LevelLow, nil
	case count <= 5:
		return LevelMedium, nil
	case count <= 10:
		return LevelHigh, nil
	default:
		return LevelMax, nil
	}
}

// Annotate attaches a level to every entry of window.
func Annotate(window []WindowEntry) ([]CalendarDay, error) {
	days := make([]CalendarDay, 0, len(window))
	for _, e := range window {
		level, err := Classify(e.Count)
		if err != nil {
			return nil, err
		}
		days = append(days, CalendarDay{Day: e.Day, Count: e.Count, Level: level})
	}
	return days, nil
}
