package progress

import (
	"context"
	"math"
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/daytime"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=exercise_mocks_test.go -package=progress_test

type dailySummarizer interface {
	DailySummary(ctx context.Context, date string) (*DailyWorkoutSummary, error)
}

type ongoingProvider interface {
	GetOngoingWorkout(ctx context.Context) (*workouts.OngoingWorkout, error)
	LiveElapsedSeconds() int
}

var (
	// DuplicateSuppressionWindow: an ongoing workout whose start time is
	// within this window of an already-counted session's completion is
	// treated as that same session, not a new one. Hardcoded heuristic
	// inherited from the original client, kept configurable.
	DuplicateSuppressionWindow = 5 * time.Minute

	// FallbackFetchLimit bounds the slower direct-listing path used when
	// no daily summary was computable.
	FallbackFetchLimit = 50
)

// ExerciseCalculator combines the persisted daily summary with the live
// in-progress session. It never returns an error: any collaborator failure
// degrades to a zeroed result so the exercise ring renders empty instead
// of crashing.
type ExerciseCalculator struct {
	summarizer dailySummarizer
	activities activityLister
	ongoing    ongoingProvider
	now        func() time.Time
}

func NewExerciseCalculator(
	summarizer dailySummarizer,
	activities activityLister,
	ongoing ongoingProvider,
	opts ...ExerciseOption,
) *ExerciseCalculator {
	c := &ExerciseCalculator{
		summarizer: summarizer,
		activities: activities,
		ongoing:    ongoing,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ExerciseOption func(*ExerciseCalculator)

func ExerciseWithNowFunc(now func() time.Time) ExerciseOption {
	return func(c *ExerciseCalculator) {
		c.now = now
	}
}

func (c *ExerciseCalculator) Calculate(
	ctx context.Context,
	targetMinutes int,
	includeOngoing bool,
) ExerciseProgress {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.exercise.calculate")
	defer span.End()
	span.SetAttributes(attribute.Int("target_minutes", targetMinutes))
	span.SetAttributes(attribute.Bool("include_ongoing", includeOngoing))

	date := daytime.Key(c.now())

	summary, err := c.summarizer.DailySummary(ctx, date)
	if err != nil {
		log.Warnf("exercise calculator: daily summary for %s: %s", date, err)
	}
	if summary == nil {
		summary, err = c.fallbackSummary(ctx, date)
		if err != nil {
			log.Errorf("exercise calculator: fallback summary for %s: %s", date, err)
			return ExerciseProgress{
				TargetMinutes: targetMinutes,
				Sessions:      []SessionSummary{},
			}
		}
	}

	totalMinutes := summary.TotalMinutes
	sessionCount := summary.SessionCount

	sessions := make([]SessionSummary, 0, len(summary.Activities)+1)
	for _, activity := range summary.Activities {
		sessions = append(sessions, SessionSummary{
			DurationMinutes: activity.DurationMinutes,
			WorkoutType:     activity.WorkoutType,
			CompletedAt:     activity.CompletedAt,
		})
	}

	if includeOngoing {
		if live, ok := c.liveSession(ctx, sessions); ok {
			totalMinutes += live.DurationMinutes
			sessionCount++
			sessions = append(sessions, live)
		}
	}

	var ratio float64
	if targetMinutes > 0 {
		ratio = float64(totalMinutes) / float64(targetMinutes)
	}

	span.SetAttributes(attribute.Int("total_minutes", totalMinutes))
	span.SetAttributes(attribute.Int("session_count", sessionCount))

	return ExerciseProgress{
		Progress:       clampRatio(ratio),
		CurrentMinutes: totalMinutes,
		TargetMinutes:  targetMinutes,
		SessionCount:   sessionCount,
		Sessions:       sessions,
	}
}

// fallbackSummary is the slower, more defensive path: list a bounded page
// of recent activities directly and filter by day bounds.
func (c *ExerciseCalculator) fallbackSummary(ctx context.Context, date string) (*DailyWorkoutSummary, error) {
	recent, err := c.activities.ListRecentActivities(ctx, FallbackFetchLimit, 0, "")
	if err != nil {
		return nil, err
	}

	summary := &DailyWorkoutSummary{
		Date: date,
	}
	for _, activity := range recent {
		if !daytime.IsWithinDay(activity.CompletedAt, date) {
			continue
		}
		minutes := int(math.Round(float64(activity.DurationSeconds) / 60))
		summary.TotalMinutes += minutes
		summary.SessionCount++
		summary.Activities = append(summary.Activities, SummaryActivity{
			ID:              activity.ID,
			Name:            activity.Name,
			WorkoutType:     activity.WorkoutType,
			DurationMinutes: minutes,
			CompletedAt:     activity.CompletedAt,
		})
	}

	return summary, nil
}

// liveSession fetches the ongoing workout and, unless it duplicates an
// already-counted session, turns it into a ring segment. The duplicate
// check prevents double-counting a workout that was just saved while the
// client-side timer still reported it as running.
func (c *ExerciseCalculator) liveSession(ctx context.Context, counted []SessionSummary) (SessionSummary, bool) {
	ongoing, err := c.ongoing.GetOngoingWorkout(ctx)
	if err != nil {
		log.Warnf("exercise calculator: get ongoing workout: %s", err)
		return SessionSummary{}, false
	}
	if ongoing == nil || !ongoing.IsRunning {
		return SessionSummary{}, false
	}

	for _, session := range counted {
		delta := ongoing.StartTime.Sub(session.CompletedAt)
		if delta < 0 {
			delta = -delta
		}
		if delta <= DuplicateSuppressionWindow {
			log.Debugf("exercise calculator: ongoing workout %s already counted, skipping", ongoing.ID)
			return SessionSummary{}, false
		}
	}

	// live elapsed time comes from the wall-clock accessor, not the
	// possibly-stale stored elapsed field
	liveMinutes := c.ongoing.LiveElapsedSeconds() / 60

	return SessionSummary{
		DurationMinutes: liveMinutes,
		WorkoutType:     ongoing.WorkoutType,
		CompletedAt:     ongoing.StartTime,
	}, true
}
