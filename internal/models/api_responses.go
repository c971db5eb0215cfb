package models

import "dsastreak/internal/activity"

// Dashboard is the payload of the dashboard endpoint.
type Dashboard struct {
	Streak      Streak                 `json:"streak"`
	Today       activity.DateKey       `json:"today"`
	Window      []activity.CalendarDay `json:"window"`
	WindowTotal int                    `json:"window_total"`
	ActiveDays  int                    `json:"active_days"`
	Recent      []RecentSolve          `json:"recent"`
}

// Calendar is the payload of the activity calendar endpoint.
type Calendar struct {
	From  activity.DateKey       `json:"from"`
	To    activity.DateKey       `json:"to"`
	Days  []activity.CalendarDay `json:"days"`
	Total int                    `json:"total"`
}

// QuestionBankResponse is the payload of the question search endpoint.
type QuestionBankResponse struct {
	Questions []Question `json:"questions"`
	Count     int        `json:"count"`
	Topics    []string   `json:"topics"`
}

// SolveCreatedResponse is returned after a solve is logged.
type SolveCreatedResponse struct {
	Solve    Solve    `json:"solve"`
	Question Question `json:"question"`
	Streak   Streak   `json:"streak"`
}
