package progress

import (
	"context"
	"fmt"
	"math"

	"github.com/Kryloss/Dashboard-sub001/internal/daytime"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=summary_mocks_test.go -package=progress_test

type activityLister interface {
	ListRecentActivities(ctx context.Context, limit, offset int, workoutType string) ([]workouts.ActivitySummary, error)
}

// SummaryPageSize caps how many recent activities are fetched when
// reducing a day. A day further than that back in history can be
// under-counted; accepted approximation, kept configurable on purpose.
var SummaryPageSize = 100

// Summarizer reduces persisted workout activities into per-day totals.
type Summarizer struct {
	activities activityLister
}

func NewSummarizer(activities activityLister) *Summarizer {
	return &Summarizer{
		activities: activities,
	}
}

// DailySummary returns the reduction of all persisted activities completed
// on the given calendar day. It returns nil (and no error) when zero
// activities matched: "no summary computable" is distinct from a computed
// zero, and callers use it to trigger their slower fallback paths.
func (s *Summarizer) DailySummary(ctx context.Context, date string) (_ *DailyWorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.summarizer.dailySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	recent, err := s.activities.ListRecentActivities(ctx, SummaryPageSize, 0, "")
	if err != nil {
		return nil, fmt.Errorf("list recent activities: %w", err)
	}

	summary := &DailyWorkoutSummary{
		Date: date,
	}
	for _, activity := range recent {
		if daytime.Key(activity.CompletedAt) != date {
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

	if summary.SessionCount == 0 {
		return nil, nil
	}

	span.SetAttributes(attribute.Int("total_minutes", summary.TotalMinutes))
	span.SetAttributes(attribute.Int("session_count", summary.SessionCount))

	return summary, nil
}
