// Package livestate keeps every UI surface looking at the same goal
// progress: one constructed Manager owns the state, coalesces refresh
// requests and notifies subscribers on each change.
package livestate

import (
	"context"
	"sync"
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/progress"
	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/metrics"
	"github.com/Kryloss/Dashboard-sub001/internal/workouts"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=livestate_test

type progressCalculator interface {
	DailyProgress(ctx context.Context, forceRefresh, includeOngoing bool) (*progress.DailyGoalProgress, error)
	InvalidateCache()
}

type activityLister interface {
	ListRecentActivities(ctx context.Context, limit, offset int, workoutType string) ([]workouts.ActivitySummary, error)
}

type ongoingChecker interface {
	GetOngoingWorkout(ctx context.Context) (*workouts.OngoingWorkout, error)
}

const (
	// DefaultRefreshRateLimit skips non-forced refreshes issued closer
	// together than this.
	DefaultRefreshRateLimit = 2 * time.Second
	// DefaultPollInterval is the tick of the ongoing-workout loop.
	DefaultPollInterval = time.Minute
	// DefaultSettleDelay is the wait before the second post-event refresh
	// that catches eventual-consistency lag in the backing store.
	DefaultSettleDelay = 500 * time.Millisecond
	// DefaultRecentActivitiesLimit bounds the recent list held in state.
	DefaultRecentActivitiesLimit = 5
)

// Manager is the live state broadcaster. It is a constructed service
// object: callers hold the single instance they need, tests build their
// own; there is no package-level singleton.
type Manager struct {
	mu             sync.Mutex
	state          State
	listeners      map[uint64]func(State)
	nextListenerID uint64
	inFlight       chan struct{}
	lastRefresh    time.Time
	pollStop       chan struct{}
	pollDone       chan struct{}
	settleTimer    *time.Timer

	calculator progressCalculator
	activities activityLister
	ongoing    ongoingChecker

	metrics *metrics.Manager
	now     func() time.Time

	rateLimit             time.Duration
	pollInterval          time.Duration
	settleDelay           time.Duration
	recentActivitiesLimit int
}

func NewManager(
	calculator progressCalculator,
	activities activityLister,
	ongoing ongoingChecker,
	opts ...Option,
) *Manager {
	m := &Manager{
		listeners:             make(map[uint64]func(State)),
		calculator:            calculator,
		activities:            activities,
		ongoing:               ongoing,
		now:                   time.Now,
		rateLimit:             DefaultRefreshRateLimit,
		pollInterval:          DefaultPollInterval,
		settleDelay:           DefaultSettleDelay,
		recentActivitiesLimit: DefaultRecentActivitiesLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type Option func(*Manager)

func WithNowFunc(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func WithMetrics(mm *metrics.Manager) Option {
	return func(m *Manager) {
		m.metrics = mm
	}
}

func WithRefreshRateLimit(d time.Duration) Option {
	return func(m *Manager) {
		m.rateLimit = d
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.pollInterval = d
	}
}

func WithSettleDelay(d time.Duration) Option {
	return func(m *Manager) {
		m.settleDelay = d
	}
}

// Subscribe registers a listener and immediately invokes it once with the
// current state, so new subscribers render without waiting for the next
// change. The returned func removes the listener.
func (m *Manager) Subscribe(listener func(State)) func() {
	m.mu.Lock()
	id := m.nextListenerID
	m.nextListenerID++
	m.listeners[id] = listener
	snapshot := m.state
	m.mu.Unlock()

	listener(snapshot)

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// CurrentState returns a snapshot of the held state.
func (m *Manager) CurrentState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// RefreshAll recomputes goal progress (and, unless live-inclusive, the
// recent activities list) and notifies subscribers. Non-forced,
// non-live-inclusive calls are rate limited and coalesce onto an
// in-flight refresh instead of starting a second one. A failed refresh
// never wipes existing good state.
func (m *Manager) RefreshAll(ctx context.Context, force, includeOngoing bool) error {
	m.mu.Lock()

	if !force && !includeOngoing {
		if m.now().Sub(m.lastRefresh) < m.rateLimit {
			m.mu.Unlock()
			log.Traceln("refresh all: rate limited, skipping")
			return nil
		}
		if m.inFlight != nil {
			waitCh := m.inFlight
			m.mu.Unlock()
			<-waitCh
			return nil
		}
	}

	done := make(chan struct{})
	m.inFlight = done
	m.lastRefresh = m.now()

	wasEmpty := !m.state.hasData()
	if wasEmpty {
		m.state.IsLoading = true
	}
	notify := m.listenersSnapshotLocked()
	loadingState := m.state
	m.mu.Unlock()

	if wasEmpty {
		for _, listener := range notify {
			listener(loadingState)
		}
	}

	err := m.doRefresh(ctx, force, includeOngoing)

	m.mu.Lock()
	if m.inFlight == done {
		m.inFlight = nil
	}
	if err != nil && wasEmpty {
		m.state.IsLoading = false
	}
	m.mu.Unlock()
	close(done)

	if err != nil {
		log.Errorf("refresh all failed: %s", err)
		return err
	}
	return nil
}

func (m *Manager) doRefresh(ctx context.Context, force, includeOngoing bool) error {
	started := m.now()

	// the live-inclusive path never reads the cache, no point clearing it
	if !includeOngoing {
		m.calculator.InvalidateCache()
	}

	goalProgress, err := m.calculator.DailyProgress(ctx, force, includeOngoing)
	if err != nil {
		return err
	}

	var recent []workouts.ActivitySummary
	refreshRecent := !includeOngoing
	if refreshRecent {
		recent, err = m.activities.ListRecentActivities(ctx, m.recentActivitiesLimit, 0, "")
		if err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.state.GoalProgress = goalProgress
	if refreshRecent {
		m.state.RecentActivities = recent
	}
	m.state.IsLoading = false
	m.state.LastUpdate = m.now()
	updated := m.state
	notify := m.listenersSnapshotLocked()
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.HistRefreshDuration.Observe(m.now().Sub(started).Seconds())
	}

	for _, listener := range notify {
		listener(updated)
	}
	return nil
}

// listeners are copied and called outside the lock: a listener may
// subscribe/unsubscribe from within its callback.
func (m *Manager) listenersSnapshotLocked() []func(State) {
	notify := make([]func(State), 0, len(m.listeners))
	for _, listener := range m.listeners {
		notify = append(notify, listener)
	}
	return notify
}

// HandleWorkoutCompleted reacts to a workout being saved: the polling loop
// is stopped (the session is no longer live), state is force-refreshed
// now, and once more after a short delay to catch backend-side
// eventual-consistency lag.
func (m *Manager) HandleWorkoutCompleted(ctx context.Context, source string) error {
	log.Debugf("workout completed (source: %s), refreshing state", source)
	if m.metrics != nil {
		m.metrics.CounterRefreshes.WithLabelValues("workout-completed").Inc()
	}
	return m.handleWorkoutEvent(ctx)
}

func (m *Manager) HandleWorkoutDeleted(ctx context.Context) error {
	log.Debugln("workout deleted, refreshing state")
	if m.metrics != nil {
		m.metrics.CounterRefreshes.WithLabelValues("workout-deleted").Inc()
	}
	return m.handleWorkoutEvent(ctx)
}

func (m *Manager) HandleWorkoutUpdated(ctx context.Context) error {
	log.Debugln("workout updated, refreshing state")
	if m.metrics != nil {
		m.metrics.CounterRefreshes.WithLabelValues("workout-updated").Inc()
	}
	return m.handleWorkoutEvent(ctx)
}

func (m *Manager) handleWorkoutEvent(ctx context.Context) error {
	m.StopOngoingWorkoutTracking()

	err := m.RefreshAll(ctx, true, false)

	m.mu.Lock()
	if m.settleTimer != nil {
		m.settleTimer.Stop()
	}
	m.settleTimer = time.AfterFunc(m.settleDelay, func() {
		if refreshErr := m.RefreshAll(context.Background(), true, false); refreshErr != nil {
			log.Warnf("post-event settle refresh failed: %s", refreshErr)
		}
	})
	m.mu.Unlock()

	return err
}

// StartOngoingWorkoutTracking starts the fixed-interval poll that keeps
// live progress fresh while a workout is running. Idempotent: starting
// while already running replaces the previous loop.
func (m *Manager) StartOngoingWorkoutTracking() {
	m.mu.Lock()
	if m.pollStop != nil {
		close(m.pollStop)
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	m.pollStop = stop
	m.pollDone = done
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.GaugeOngoingTracking.Set(1)
	}

	go m.pollLoop(stop, done)
}

// StopOngoingWorkoutTracking stops the poll loop, if running.
func (m *Manager) StopOngoingWorkoutTracking() {
	m.mu.Lock()
	if m.pollStop != nil {
		close(m.pollStop)
		m.pollStop = nil
	}
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.GaugeOngoingTracking.Set(0)
	}
}

func (m *Manager) pollLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ongoing, err := m.ongoing.GetOngoingWorkout(context.Background())
			if err != nil {
				log.Warnf("ongoing workout poll: %s", err)
				continue
			}
			if ongoing == nil || !ongoing.IsRunning {
				// workout gone or paused, the loop self-terminates
				m.clearPollStop(stop)
				return
			}
			if err := m.RefreshAll(context.Background(), true, true); err != nil {
				log.Warnf("ongoing workout poll refresh: %s", err)
			}
		}
	}
}

func (m *Manager) clearPollStop(stop <-chan struct{}) {
	m.mu.Lock()
	if m.pollStop != nil && (<-chan struct{})(m.pollStop) == stop {
		close(m.pollStop)
		m.pollStop = nil
	}
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.GaugeOngoingTracking.Set(0)
	}
}

// Close stops the poll loop and any pending settle timer. Used on service
// shutdown and in tests.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.settleTimer != nil {
		m.settleTimer.Stop()
		m.settleTimer = nil
	}
	pollDone := m.pollDone
	m.mu.Unlock()

	m.StopOngoingWorkoutTracking()

	if pollDone != nil {
		<-pollDone
	}
}
