package workouts

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOngoingExists   = errors.New("an ongoing workout already exists")
	ErrNoOngoing       = errors.New("no ongoing workout")
	ErrOngoingNotSaved = errors.New("ongoing workout could not be saved")
)

// Tracker owns the single in-flight workout session per process.
// The persisted elapsed field on the snapshot it hands out is only
// updated on pause/resume; LiveElapsedSeconds is always wall-clock
// accurate.
type Tracker struct {
	mu          sync.Mutex
	current     *OngoingWorkout
	accumulated time.Duration
	resumedAt   time.Time

	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		now: time.Now,
	}
}

// Start begins a new ongoing workout of the given type.
func (t *Tracker) Start(workoutType string) (*OngoingWorkout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		return nil, ErrOngoingExists
	}

	now := t.now()
	t.current = &OngoingWorkout{
		ID:          uuid.NewString(),
		WorkoutType: workoutType,
		IsRunning:   true,
		StartTime:   now,
	}
	t.accumulated = 0
	t.resumedAt = now

	snapshot := *t.current
	return &snapshot, nil
}

func (t *Tracker) Pause() (*OngoingWorkout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil, ErrNoOngoing
	}
	if t.current.IsRunning {
		t.accumulated += t.now().Sub(t.resumedAt)
		t.current.IsRunning = false
		t.current.ElapsedSeconds = int(t.accumulated.Seconds())
	}

	snapshot := *t.current
	return &snapshot, nil
}

func (t *Tracker) Resume() (*OngoingWorkout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil, ErrNoOngoing
	}
	if !t.current.IsRunning {
		t.resumedAt = t.now()
		t.current.IsRunning = true
	}

	snapshot := *t.current
	return &snapshot, nil
}

// Finish closes the ongoing workout and returns the completed activity
// projection ready to be persisted. The tracker is cleared even if the
// caller later fails to save the activity.
func (t *Tracker) Finish() (*ActivitySummary, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil, ErrNoOngoing
	}

	elapsed := t.accumulated
	if t.current.IsRunning {
		elapsed += t.now().Sub(t.resumedAt)
	}

	activity := &ActivitySummary{
		ID:              t.current.ID,
		WorkoutType:     t.current.WorkoutType,
		DurationSeconds: int(elapsed.Seconds()),
		CompletedAt:     t.now(),
	}

	t.current = nil
	t.accumulated = 0

	return activity, nil
}

// Discard drops the ongoing workout without producing an activity.
func (t *Tracker) Discard() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
	t.accumulated = 0
}

// GetOngoingWorkout returns a snapshot of the in-flight session,
// or nil when there is none. The context parameter keeps the signature
// aligned with the other collaborator lookups.
func (t *Tracker) GetOngoingWorkout(_ context.Context) (*OngoingWorkout, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil, nil
	}
	snapshot := *t.current
	return &snapshot, nil
}

// LiveElapsedSeconds returns the wall-clock-accurate elapsed time of the
// in-flight session, independent of the snapshot's stored elapsed field.
func (t *Tracker) LiveElapsedSeconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return 0
	}
	elapsed := t.accumulated
	if t.current.IsRunning {
		elapsed += t.now().Sub(t.resumedAt)
	}
	return int(elapsed.Seconds())
}
