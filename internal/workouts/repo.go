package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrActivityNotFound = errors.New("workout activity not found")

const (
	// cache expiry for the last good recent-activities page, in seconds
	recentActivitiesCacheExpire = 60 * 10
)

// Repo persists completed workout activities. The freecache slot keeps the
// last successfully listed page so a failing database read degrades to
// slightly stale data instead of an empty progress ring.
type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	megabyte := 1024 * 1024
	return &Repo{
		db:    db,
		cache: freecache.NewCache(megabyte),
	}
}

func (r *Repo) Save(ctx context.Context, activity ActivitySummary) (_ *ActivitySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.CompletedAt.IsZero() {
		activity.CompletedAt = time.Now()
	}

	span.SetAttributes(attribute.String("activity.id", activity.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_activity
				(id, name, workout_type, duration_seconds, completed_at)
				VALUES ($1, $2, $3, $4, $5);`,
		activity.ID, activity.Name, activity.WorkoutType, activity.DurationSeconds, activity.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout activity: %w", err)
	}

	return &activity, nil
}

func (r *Repo) Update(ctx context.Context, activity ActivitySummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity.id", activity.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_activity
			SET name = $1, workout_type = $2, duration_seconds = $3, completed_at = $4
			WHERE id = $5;`,
		activity.Name, activity.WorkoutType, activity.DurationSeconds, activity.CompletedAt, activity.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_activity WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// ListRecentActivities returns up to limit activities, newest first by
// completion time. On a database error the last good page is served from
// the in-process cache when one is available.
func (r *Repo) ListRecentActivities(
	ctx context.Context,
	limit, offset int,
	workoutType string,
) (_ []ActivitySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))
	span.SetAttributes(attribute.String("workout_type", workoutType))

	cacheKey := fmt.Sprintf("recent::%d::%d::%s", limit, offset, workoutType)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, workout_type, duration_seconds, completed_at
			FROM workout_activity
				WHERE ($1::text = '' OR workout_type = $1)
			ORDER BY completed_at DESC
			LIMIT $2
			OFFSET $3;`,
		workoutType, limit, offset,
	)
	if err != nil {
		if cached, ok := r.cachedActivities(cacheKey); ok {
			log.Warnf("list recent activities failed (%s), serving last good page from cache", err)
			return cached, nil
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	activities, err := r.rows2activities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2activities: %w", err)
	}

	if activitiesBytes, err := json.Marshal(activities); err == nil {
		if err := r.cache.Set([]byte(cacheKey), activitiesBytes, recentActivitiesCacheExpire); err != nil {
			log.Tracef("failed to cache recent activities page: %s", err)
		}
	}

	return activities, nil
}

func (r *Repo) cachedActivities(cacheKey string) ([]ActivitySummary, bool) {
	activitiesBytes, err := r.cache.Get([]byte(cacheKey))
	if err != nil {
		return nil, false
	}
	var activities []ActivitySummary
	if err := json.Unmarshal(activitiesBytes, &activities); err != nil {
		log.Errorf("unmarshal cached recent activities: %s", err)
		return nil, false
	}
	return activities, true
}

func (r *Repo) rows2activities(rows pgx.Rows) ([]ActivitySummary, error) {
	var activities []ActivitySummary
	for rows.Next() {
		var a ActivitySummary
		if err := rows.Scan(&a.ID, &a.Name, &a.WorkoutType, &a.DurationSeconds, &a.CompletedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	if activities == nil {
		activities = make([]ActivitySummary, 0)
	}

	return activities, nil
}
