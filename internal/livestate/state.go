package livestate

import (
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/progress"
	"github.com/Kryloss/Dashboard-sub001/internal/workouts"
)

// State is the broadcaster's held view: the last computed goal progress
// plus the recent activity list. IsLoading only flips to true on a refresh
// that starts with no existing data; a refresh over prior data keeps the
// stale values visible instead of blanking subscribers.
type State struct {
	GoalProgress     *progress.DailyGoalProgress `json:"goalProgress"`
	RecentActivities []workouts.ActivitySummary  `json:"recentActivities"`
	IsLoading        bool                        `json:"isLoading"`
	LastUpdate       time.Time                   `json:"lastUpdate"`
}

func (s State) hasData() bool {
	return s.GoalProgress != nil || len(s.RecentActivities) > 0
}
