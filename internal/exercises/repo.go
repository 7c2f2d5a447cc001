package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = fmt.Errorf("exercise %w", store.ErrNotFound)

// ListSort selects the ordering of the exercise list: by name for the catalog,
// by creation time for the workout plan and the guided session.
type ListSort string

const (
	SortByName      ListSort = "name"
	SortByCreatedAt ListSort = "created_at"
)

type ListParams struct {
	Sort  ListSort
	Limit int
}

type Repo struct {
	store *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	span.SetAttributes(
		attribute.String("params.sort", string(params.Sort)),
		attribute.Int("params.limit", params.Limit),
	)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sortCol := string(params.Sort)
	if sortCol == "" {
		sortCol = string(SortByName)
	}

	exercises, err := store.Select[Exercise](ctx, r.store,
		store.From(store.Exercises).Order(sortCol, false).Limit(params.Limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	span.SetAttributes(attribute.String("exercise.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := store.Single[Exercise](ctx, r.store, store.From(store.Exercises).Eq("id", id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Exercise{}, ErrExerciseNotFound
		}
		return Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	return exercise, nil
}

func (r *Repo) Add(ctx context.Context, newExercise NewExercise) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := store.Insert[Exercise](ctx, r.store, store.Exercises, newExercise.values())
	if err != nil {
		return Exercise{}, fmt.Errorf("add exercise: %w", err)
	}
	return exercise, nil
}

func (r *Repo) Update(ctx context.Context, id string, update ExerciseUpdate) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	span.SetAttributes(attribute.String("exercise.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := store.Update[Exercise](ctx, r.store, store.Exercises, id, update.values())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Exercise{}, ErrExerciseNotFound
		}
		return Exercise{}, fmt.Errorf("update exercise: %w", err)
	}
	return exercise, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	span.SetAttributes(attribute.String("exercise.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := store.Delete(ctx, r.store, store.Exercises, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}
