package models

import "dsastreak/internal/activity"

// Streak is the per-user streak row maintained by the database trigger on
// solves. A user who never solved anything has the zero Streak.
type Streak struct {
	CurrentStreak  int               `json:"current_streak"`
	LongestStreak  int               `json:"longest_streak"`
	LastSolvedDate *activity.DateKey `json:"last_solved_date"`
}
