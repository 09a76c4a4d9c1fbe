// Package progress implements the daily goal-progress engine: it reconciles
// workout, sleep and nutrition data into a single consistent "today" view,
// with a time-boxed single-slot cache on top.
package progress

import "time"

// DailyGoalProgress is the engine's primary output. It is recomputed and
// cached only in memory, never persisted.
type DailyGoalProgress struct {
	Exercise  ExerciseProgress  `json:"exercise"`
	Nutrition NutritionProgress `json:"nutrition"`
	Recovery  RecoveryProgress  `json:"recovery"`
}

// ExerciseProgress holds today's exercise totals against the daily target.
// Progress is always clamped to [0, 1].
type ExerciseProgress struct {
	Progress       float64          `json:"progress"`
	CurrentMinutes int              `json:"currentMinutes"`
	TargetMinutes  int              `json:"targetMinutes"`
	SessionCount   int              `json:"sessionCount"`
	Sessions       []SessionSummary `json:"sessions"`
}

// SessionSummary is one ring segment: a counted session, persisted or live.
type SessionSummary struct {
	DurationMinutes int       `json:"duration"`
	WorkoutType     string    `json:"type"`
	CompletedAt     time.Time `json:"completedAt"`
}

// NutritionProgress is currently always a placeholder value; see
// CalculateNutritionProgress.
type NutritionProgress struct {
	Progress        float64 `json:"progress"`
	CurrentCalories int     `json:"currentCalories"`
	TargetCalories  int     `json:"targetCalories"`
	Placeholder     bool    `json:"placeholder"`
}

// RecoveryProgress holds sleep progress against the sleep-hours target.
// Placeholder marks a value produced by the time-of-day heuristic rather
// than a real sleep record.
type RecoveryProgress struct {
	Progress     float64 `json:"progress"`
	CurrentHours float64 `json:"currentHours"`
	TargetHours  float64 `json:"targetHours"`
	Placeholder  bool    `json:"placeholder"`
}

// DailyWorkoutSummary is the per-day reduction of persisted workout
// activities. Derived on each call, never cached on its own.
type DailyWorkoutSummary struct {
	Date         string            `json:"date"`
	TotalMinutes int               `json:"totalMinutes"`
	SessionCount int               `json:"sessionCount"`
	Activities   []SummaryActivity `json:"activities"`
}

type SummaryActivity struct {
	ID              string    `json:"id"`
	Name            string    `json:"name,omitempty"`
	WorkoutType     string    `json:"type"`
	DurationMinutes int       `json:"duration"`
	CompletedAt     time.Time `json:"completedAt"`
}

func clampRatio(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
