package progress

import (
	"context"
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/daytime"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/internal/userdata"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=recovery_mocks_test.go -package=progress_test

type sleepProvider interface {
	GetSleepRecord(ctx context.Context, date string) (*userdata.SleepRecord, error)
}

// RecoveryCalculator turns logged sleep into a progress ratio against the
// sleep-hours target. Sleep tracking is retrospective, so when no record
// exists yet the calculator degrades through two fallbacks: yesterday's
// record for before-noon queries (last night's sleep may have been logged
// under yesterday if it spanned midnight), then a time-of-day heuristic
// marked with Placeholder=true.
type RecoveryCalculator struct {
	sleep sleepProvider
	now   func() time.Time
}

func NewRecoveryCalculator(sleep sleepProvider, opts ...RecoveryOption) *RecoveryCalculator {
	c := &RecoveryCalculator{
		sleep: sleep,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type RecoveryOption func(*RecoveryCalculator)

func RecoveryWithNowFunc(now func() time.Time) RecoveryOption {
	return func(c *RecoveryCalculator) {
		c.now = now
	}
}

// Calculate never returns an error: a failing sleep lookup degrades to the
// heuristic value so the recovery ring always renders something.
func (c *RecoveryCalculator) Calculate(ctx context.Context, targetHours float64) RecoveryProgress {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.recovery.calculate")
	defer span.End()
	span.SetAttributes(attribute.Float64("target_hours", targetHours))

	if targetHours <= 0 {
		return RecoveryProgress{TargetHours: targetHours}
	}

	now := c.now()

	if rp, ok := c.fromRecord(ctx, daytime.Key(now), targetHours); ok {
		return rp
	}

	if now.Hour() < 12 {
		yesterday := daytime.Key(now.AddDate(0, 0, -1))
		if rp, ok := c.fromRecord(ctx, yesterday, targetHours); ok {
			return rp
		}
	}

	ratio := timeOfDayRecoveryRatio(now.Hour())
	span.SetAttributes(attribute.Bool("placeholder", true))

	return RecoveryProgress{
		Progress:     clampRatio(ratio),
		CurrentHours: ratio * targetHours,
		TargetHours:  targetHours,
		Placeholder:  true,
	}
}

func (c *RecoveryCalculator) fromRecord(ctx context.Context, date string, targetHours float64) (RecoveryProgress, bool) {
	record, err := c.sleep.GetSleepRecord(ctx, date)
	if err != nil {
		log.Warnf("recovery calculator: get sleep record for %s: %s", date, err)
		return RecoveryProgress{}, false
	}
	if record == nil || record.TotalMinutes <= 0 {
		return RecoveryProgress{}, false
	}

	hours := float64(record.TotalMinutes) / 60
	return RecoveryProgress{
		Progress:     clampRatio(hours / targetHours),
		CurrentHours: hours,
		TargetHours:  targetHours,
		Placeholder:  false,
	}, true
}

// timeOfDayRecoveryRatio is the no-data default: low right after midnight,
// 0.7 through the morning, then a linear ramp towards 1.0 over the
// afternoon and evening.
func timeOfDayRecoveryRatio(hour int) float64 {
	switch {
	case hour < 6:
		return 0.2
	case hour < 12:
		return 0.7
	default:
		ratio := 0.7 + (float64(hour-12)/12)*0.3
		if ratio > 1 {
			ratio = 1
		}
		return ratio
	}
}
