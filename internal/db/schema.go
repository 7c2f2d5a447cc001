package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema creates the fittrack tables if missing. It is idempotent.
// created_at uses clock_timestamp() so rows of one multi-row insert keep
// their insertion order.
var Schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name         TEXT NOT NULL,
		muscle_group TEXT,
		reps_target  TEXT,
		instructions TEXT,
		video_url    TEXT,
		description  TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name       TEXT NOT NULL,
		date       DATE NOT NULL,
		notes      TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE TABLE IF NOT EXISTS workout_exercises (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		workout_id       UUID NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
		exercise_id      UUID NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
		sets             INTEGER NOT NULL DEFAULT 1,
		reps             INTEGER,
		weight_kg        NUMERIC(7, 2),
		duration_minutes INTEGER,
		notes            TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
	`CREATE INDEX IF NOT EXISTS workout_exercises_workout_id_idx ON workout_exercises (workout_id)`,
	`CREATE TABLE IF NOT EXISTS daily_logs (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		date       DATE NOT NULL UNIQUE,
		completed  BOOLEAN NOT NULL DEFAULT false,
		notes      TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	)`,
}

func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range Schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	log.Debugf("db schema applied, %d statements", len(Schema))
	return nil
}
