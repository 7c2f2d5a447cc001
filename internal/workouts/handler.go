package workouts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, limit int) (_ []Workout, err error)
	Get(ctx context.Context, id string) (_ WorkoutDetail, err error)
	Add(ctx context.Context, input WorkoutInput) (_ WorkoutDetail, err error)
	Delete(ctx context.Context, id string) (err error)
}

type Handler struct {
	repo workoutsRepo
}

func NewHandler(repo workoutsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	limit := DefaultListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			pkg.WriteJSONError(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = min(parsed, MaxListLimit)
	}
	span.SetAttributes(attribute.Int("limit", limit))

	workouts, err := handler.repo.List(ctx, limit)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, workouts)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
		return
	}

	detail, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			pkg.WriteJSONError(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s: %s", id, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, detail)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	var newWorkout NewWorkout
	if err := pkg.DecodeJSONBody(r, &newWorkout); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(newWorkout); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := newWorkout.Parse()
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Name == "" {
		pkg.WriteJSONError(w, "name is required", http.StatusBadRequest)
		return
	}

	detail, err := handler.repo.Add(ctx, input)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			pkg.WriteJSONError(w, "unknown exercise selected", http.StatusBadRequest)
			return
		}
		log.Errorf("add workout: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %s [%s], %d exercises", detail.Name, detail.ID, len(detail.Exercises))
	pkg.WriteJSONResponse(w, detail, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
		return
	}

	if !pkg.IsDeleteConfirmed(r) {
		pkg.WriteJSONError(w, "confirmation required", http.StatusPreconditionRequired)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			pkg.WriteJSONError(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %s: %s", id, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %s deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
