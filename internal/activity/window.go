package activity

import "fmt"

// DailyCount is one row of the sparse per-day solve counts. Days without
// solves are absent rather than zero.
type DailyCount struct {
	Day   DateKey `json:"day"`
	Count int     `json:"solve_count"`
}

// WindowEntry is one day of a dense activity window.
type WindowEntry struct {
	Day   DateKey `json:"day"`
	Count int     `json:"count"`
}

// WindowStart returns the first (inclusive) day of a window of windowSize days
// ending at anchor. Sources should fetch rows with day >= WindowStart so that
// their cutoff and the window agree.
func WindowStart(anchor DateKey, windowSize int) (DateKey, error) {
	if windowSize < 1 {
		return "", fmt.Errorf("%w: window size %d has no first day", ErrInvalidArgument, windowSize)
	}
	return Offset(anchor, -(windowSize - 1))
}

// BuildWindow expands sparse into exactly windowSize entries covering
// [anchor-(windowSize-1), anchor], oldest first. Missing days get a zero
// count and days outside the range are ignored. When sparse holds the same
// day more than once, the later entry wins.
func BuildWindow(sparse []DailyCount, windowSize int, anchor DateKey) ([]WindowEntry, error) {
	if windowSize < 0 {
		return nil, fmt.Errorf("%w: negative window size %d", ErrInvalidArgument, windowSize)
	}
	end, err := anchor.Time()
	if err != nil {
		return nil, err
	}

	counts := make(map[DateKey]int, len(sparse))
	for _, d := range sparse {
		if !d.Day.Valid() {
			return nil, fmt.Errorf("%w: malformed day %q in source rows", ErrInvalidArgument, string(d.Day))
		}
		if d.Count < 0 {
			return nil, fmt.Errorf("%w: negative count %d on %s", ErrInvalidArgument, d.Count, d.Day)
		}
		counts[d.Day] = d.Count
	}

	window := make([]WindowEntry, 0, windowSize)
	for i := windowSize - 1; i >= 0; i-- {
		day := Normalize(end.AddDate(0, 0, -i))
		window = append(window, WindowEntry{Day: day, Count: counts[day]})
	}
	return window, nil
}

// Total sums the counts of a window.
func Total(window []WindowEntry) int {
	total := 0
	for _, e := range window {
		total += e.Count
	}
	return total
}

// ActiveDays counts the days of a window with at least one solve.
func ActiveDays(window []WindowEntry) int {
	active := 0
	for _, e := range window {
		if e.Count > 0 {
			active++
		}
	}
	return active
}
