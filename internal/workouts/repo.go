package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = fmt.Errorf("workout %w", store.ErrNotFound)

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

// List returns the latest workouts, newest date first.
func (r *Repo) List(ctx context.Context, limit int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	span.SetAttributes(attribute.Int("limit", limit))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := store.Select[Workout](ctx, r.store,
		store.From(store.Workouts).Order("date", true).Order("created_at", true).Limit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Get returns the workout with its exercise rows, each joined with its exercise.
func (r *Repo) Get(ctx context.Context, id string) (_ WorkoutDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	span.SetAttributes(attribute.String("workout.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := store.Single[Workout](ctx, r.store, store.From(store.Workouts).Eq("id", id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return WorkoutDetail{}, ErrWorkoutNotFound
		}
		return WorkoutDetail{}, fmt.Errorf("get workout: %w", err)
	}

	items, err := store.Select[WorkoutExercise](ctx, r.store,
		store.From(store.WorkoutExercises).Eq("workout_id", id).Order("created_at", false),
	)
	if err != nil {
		return WorkoutDetail{}, fmt.Errorf("get workout exercises: %w", err)
	}

	if err := r.joinExercises(ctx, items); err != nil {
		return WorkoutDetail{}, err
	}

	return WorkoutDetail{
		Workout:   workout,
		Exercises: items,
	}, nil
}

func (r *Repo) joinExercises(ctx context.Context, items []WorkoutExercise) error {
	if len(items) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var ids []string
	for _, item := range items {
		if !seen[item.ExerciseID] {
			seen[item.ExerciseID] = true
			ids = append(ids, item.ExerciseID)
		}
	}

	exerciseList, err := store.Select[exercises.Exercise](ctx, r.store,
		store.From(store.Exercises).In("id", ids),
	)
	if err != nil {
		return fmt.Errorf("get workout exercise details: %w", err)
	}

	byID := make(map[string]exercises.Exercise, len(exerciseList))
	for _, e := range exerciseList {
		byID[e.ID] = e
	}
	for i := range items {
		if e, ok := byID[items[i].ExerciseID]; ok {
			items[i].Exercise = &e
		}
	}
	return nil
}

// Add stores the workout and its rows in one transaction.
func (r *Repo) Add(ctx context.Context, input WorkoutInput) (_ WorkoutDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	span.SetAttributes(attribute.Int("items", len(input.Items)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var detail WorkoutDetail
	err = r.store.InTx(ctx, func(tx *store.Store) error {
		workout, err := store.Insert[Workout](ctx, tx, store.Workouts, input.values())
		if err != nil {
			return err
		}

		rows := make([]store.Values, 0, len(input.Items))
		for _, item := range input.Items {
			rows = append(rows, item.values(workout.ID))
		}
		items, err := store.InsertMany[WorkoutExercise](ctx, tx, store.WorkoutExercises, rows)
		if err != nil {
			return err
		}

		detail = WorkoutDetail{
			Workout:   workout,
			Exercises: items,
		}
		return nil
	})
	if err != nil {
		return WorkoutDetail{}, fmt.Errorf("add workout: %w", err)
	}

	if err := r.joinExercises(ctx, detail.Exercises); err != nil {
		return WorkoutDetail{}, err
	}
	return detail, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	span.SetAttributes(attribute.String("workout.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := store.Delete(ctx, r.store, store.Workouts, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}
