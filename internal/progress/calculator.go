package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/daytime"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/metrics"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"
	"github.com/Kryloss/Dashboard-sub001/internal/userdata"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=calculator_mocks_test.go -package=progress_test

type goalsProvider interface {
	GetGoals(ctx context.Context) (*userdata.Goals, error)
}

// CacheTTL bounds how long a computed daily progress stays valid. The
// calendar-day check on read additionally invalidates the slot across
// midnight regardless of age.
var CacheTTL = 2 * time.Minute

type cacheEntry struct {
	date      string
	data      *DailyGoalProgress
	timestamp time.Time
}

// Calculator is the daily progress orchestrator: it composes the recovery,
// exercise and nutrition calculators against the user's goal targets and
// keeps a single coarse-grained cache slot on top. The mutex gives the
// slot the single-writer semantics the engine assumes.
type Calculator struct {
	mu     sync.Mutex
	cached *cacheEntry

	goals    goalsProvider
	recovery *RecoveryCalculator
	exercise *ExerciseCalculator

	metrics *metrics.Manager
	now     func() time.Time
}

func NewCalculator(
	goals goalsProvider,
	recovery *RecoveryCalculator,
	exercise *ExerciseCalculator,
	opts ...CalculatorOption,
) *Calculator {
	c := &Calculator{
		goals:    goals,
		recovery: recovery,
		exercise: exercise,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type CalculatorOption func(*Calculator)

func CalculatorWithNowFunc(now func() time.Time) CalculatorOption {
	return func(c *Calculator) {
		c.now = now
	}
}

func CalculatorWithMetrics(m *metrics.Manager) CalculatorOption {
	return func(c *Calculator) {
		c.metrics = m
	}
}

// DailyProgress computes (or serves from cache) today's goal progress.
// A nil result with a nil error means no goals are configured; callers
// must render that as "set up your goals", not as a failure. The
// live-inclusive path is never served from cache since the live elapsed
// time changes every tick.
func (c *Calculator) DailyProgress(
	ctx context.Context,
	forceRefresh, includeOngoing bool,
) (_ *DailyGoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.calculator.dailyProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("force_refresh", forceRefresh))
	span.SetAttributes(attribute.Bool("include_ongoing", includeOngoing))

	if !forceRefresh && !includeOngoing {
		if cached := c.cachedProgress(); cached != nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			if c.metrics != nil {
				c.metrics.CounterProgressCacheHits.Inc()
			}
			return cached, nil
		}
	}
	if c.metrics != nil {
		c.metrics.CounterProgressCacheMiss.Inc()
	}

	goals, err := c.goals.GetGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	if goals == nil {
		log.Debugln("daily progress: no goals configured")
		return nil, nil
	}

	result := &DailyGoalProgress{
		Recovery:  c.recovery.Calculate(ctx, goals.SleepHours),
		Exercise:  c.exercise.Calculate(ctx, goals.DailyExerciseMinutes, includeOngoing),
		Nutrition: CalculateNutritionProgress(c.now(), goals.CalorieTarget),
	}

	now := c.now()
	c.mu.Lock()
	c.cached = &cacheEntry{
		date:      daytime.Key(now),
		data:      result,
		timestamp: now,
	}
	c.mu.Unlock()

	return result, nil
}

// cachedProgress returns the cached value if the slot is still valid:
// same calendar day as now (evaluated at read time, so crossing midnight
// implicitly invalidates) and younger than CacheTTL.
func (c *Calculator) cachedProgress() *DailyGoalProgress {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached == nil {
		return nil
	}

	now := c.now()
	if c.cached.date != daytime.Key(now) {
		return nil
	}
	if now.Sub(c.cached.timestamp) >= CacheTTL {
		return nil
	}

	return c.cached.data
}

// InvalidateCache clears the slot. No-op when already empty.
func (c *Calculator) InvalidateCache() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

// RefreshProgress is a convenience for a forced recomputation.
func (c *Calculator) RefreshProgress(ctx context.Context) (*DailyGoalProgress, error) {
	return c.DailyProgress(ctx, true, false)
}

// ProgressForDate supports only today; historical progress is an open
// extension point, and any other date yields nil.
func (c *Calculator) ProgressForDate(ctx context.Context, date string) (*DailyGoalProgress, error) {
	if date != daytime.Key(c.now()) {
		log.Debugf("progress for date %s requested, only today is supported", date)
		return nil, nil
	}
	return c.DailyProgress(ctx, false, false)
}
