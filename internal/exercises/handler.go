package exercises

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context, params ListParams) (_ []Exercise, err error)
	Get(ctx context.Context, id string) (_ Exercise, err error)
	Add(ctx context.Context, newExercise NewExercise) (_ Exercise, err error)
	Update(ctx context.Context, id string, update ExerciseUpdate) (_ Exercise, err error)
	Delete(ctx context.Context, id string) (err error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	sort := ListSort(r.URL.Query().Get("sort"))
	switch sort {
	case "":
		sort = SortByName
	case SortByName, SortByCreatedAt:
	default:
		pkg.WriteJSONError(w, "sort must be one of: name, created_at", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("sort", string(sort)))

	exercises, err := handler.repo.List(ctx, ListParams{Sort: sort})
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, exercises)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			pkg.WriteJSONError(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %s: %s", id, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, exercise)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	var newExercise NewExercise
	if err := pkg.DecodeJSONBody(r, &newExercise); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	newExercise.Name = strings.TrimSpace(newExercise.Name)
	if err := pkg.Validate(newExercise); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Add(ctx, newExercise)
	if err != nil {
		log.Errorf("add exercise: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %s [%s]", exercise.Name, exercise.ID)
	pkg.WriteJSONResponse(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
		return
	}

	var update ExerciseUpdate
	if err := pkg.DecodeJSONBody(r, &update); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}
	if update.IsEmpty() {
		pkg.WriteJSONError(w, "nothing to update", http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(update); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			pkg.WriteJSONError(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise %s: %s", id, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, exercise)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
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
		log.Errorf("delete exercise %s: %s", id, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("exercise %s deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
