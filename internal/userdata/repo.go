package userdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kryloss/Dashboard-sub001/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo persists user goals and per-day sleep records. A missing row is a
// defined state (nil, nil), not an error: no goals configured / no sleep
// logged for that day.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetGoals(ctx context.Context) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userdata.getGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var goals Goals
	err = r.db.QueryRow(
		ctx,
		`SELECT daily_exercise_minutes, calorie_target, sleep_hours, updated_at
			FROM user_goals WHERE id = 1;`,
	).Scan(&goals.DailyExerciseMinutes, &goals.CalorieTarget, &goals.SleepHours, &goals.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}

	return &goals, nil
}

func (r *Repo) UpsertGoals(ctx context.Context, goals Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userdata.upsertGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_goals (id, daily_exercise_minutes, calorie_target, sleep_hours, updated_at)
			VALUES (1, $1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				daily_exercise_minutes = EXCLUDED.daily_exercise_minutes,
				calorie_target = EXCLUDED.calorie_target,
				sleep_hours = EXCLUDED.sleep_hours,
				updated_at = EXCLUDED.updated_at;`,
		goals.DailyExerciseMinutes, goals.CalorieTarget, goals.SleepHours, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert goals: %w", err)
	}
	return nil
}

func (r *Repo) GetSleepRecord(ctx context.Context, date string) (_ *SleepRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userdata.getSleepRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	var record SleepRecord
	var sessionsBytes []byte
	err = r.db.QueryRow(
		ctx,
		`SELECT date, total_minutes, sessions FROM sleep_record WHERE date = $1;`,
		date,
	).Scan(&record.Date, &record.TotalMinutes, &sessionsBytes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query sleep record: %w", err)
	}

	if len(sessionsBytes) > 0 {
		if err := json.Unmarshal(sessionsBytes, &record.Sessions); err != nil {
			return nil, fmt.Errorf("unmarshal sleep sessions for %s: %w", date, err)
		}
	}

	return &record, nil
}

func (r *Repo) UpsertSleepRecord(ctx context.Context, record SleepRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.userdata.upsertSleepRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", record.Date))

	sessionsBytes, err := json.Marshal(record.Sessions)
	if err != nil {
		return fmt.Errorf("marshal sleep sessions: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO sleep_record (date, total_minutes, sessions)
			VALUES ($1, $2, $3)
			ON CONFLICT (date) DO UPDATE SET
				total_minutes = EXCLUDED.total_minutes,
				sessions = EXCLUDED.sessions;`,
		record.Date, record.TotalMinutes, sessionsBytes,
	)
	if err != nil {
		return fmt.Errorf("upsert sleep record: %w", err)
	}
	return nil
}
