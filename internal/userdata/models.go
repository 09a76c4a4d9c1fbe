package userdata

import "time"

// Goals are the per-user daily targets. Read-only for the progress engine.
type Goals struct {
	DailyExerciseMinutes int       `json:"dailyExerciseMinutes"`
	CalorieTarget        int       `json:"calorieTarget"`
	SleepHours           float64   `json:"sleepHours"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// SleepRecord holds one day of logged sleep, keyed by the calendar-day
// string. A session spanning midnight is logged under the day it started.
type SleepRecord struct {
	Date         string         `json:"date"`
	TotalMinutes int            `json:"totalMinutes"`
	Sessions     []SleepSession `json:"sessions"`
}

type SleepSession struct {
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
}
