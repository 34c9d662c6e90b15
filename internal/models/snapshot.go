package models

import "time"

// DailySnapshot freezes the activities that applied on a past date so later
// catalog edits do not rewrite history.
type DailySnapshot struct {
	Date       string     `json:"date" yaml:"date"` // yyyy-MM-dd
	Activities []Activity `json:"activities" yaml:"activities"`
	CreatedAt  time.Time  `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
}

// Streak is the derived streak record of one activity.
type Streak struct {
	ActivityID string `json:"activityId" yaml:"activityId"`
	Current    int    `json:"current" yaml:"current"`
	Longest    int    `json:"longest" yaml:"longest"`
}
