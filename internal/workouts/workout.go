package workouts

import "time"

// ActivitySummary is a read-only projection of a persisted workout session.
type ActivitySummary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name,omitempty"`
	WorkoutType     string    `json:"workoutType"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
}

// OngoingWorkout is the single in-flight, not-yet-persisted workout session.
// ElapsedSeconds is a snapshot taken at the last state change and can lag
// behind the wall clock; use Tracker.LiveElapsedSeconds for accurate time.
type OngoingWorkout struct {
	ID             string    `json:"id"`
	WorkoutType    string    `json:"workoutType"`
	IsRunning      bool      `json:"isRunning"`
	StartTime      time.Time `json:"startTime"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
}
