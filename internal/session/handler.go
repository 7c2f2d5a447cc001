package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// PlanViewPath is where a client is sent to add exercises when the plan is empty.
const PlanViewPath = "/exercises?sort=created_at"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=session_test

type sessionService interface {
	Start(ctx context.Context) (_ *Stepper, err error)
	Get(ctx context.Context, id string) (_ *Stepper, err error)
	Advance(ctx context.Context, id string) (_ *Stepper, err error)
	Skip(ctx context.Context, id string) (_ *Stepper, err error)
	Retreat(ctx context.Context, id string) (_ *Stepper, err error)
	Finish(ctx context.Context, id string) (_ *Stepper, err error)
	Complete(ctx context.Context, id string) (_ CompleteView, err error)
}

type Handler struct {
	service sessionService
}

func NewHandler(service sessionService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the session routes. Starting and finishing write to
// the store, so they are rate limited.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	rateLimit := middleware.RateLimit(rateLimiter, metricsManager, "session", allowedPerMin)

	mainRouter.Handle("/session", rateLimit(http.HandlerFunc(handler.HandleStart))).
		Methods("POST", "OPTIONS").Name("session-start")
	mainRouter.HandleFunc("/session/{id}", handler.HandleGet).
		Methods("GET", "OPTIONS").Name("session-get")
	mainRouter.HandleFunc("/session/{id}/advance", handler.HandleAdvance).
		Methods("POST", "OPTIONS").Name("session-advance")
	mainRouter.HandleFunc("/session/{id}/retreat", handler.HandleRetreat).
		Methods("POST", "OPTIONS").Name("session-retreat")
	mainRouter.HandleFunc("/session/{id}/skip", handler.HandleSkip).
		Methods("POST", "OPTIONS").Name("session-skip")
	mainRouter.Handle("/session/{id}/finish", rateLimit(http.HandlerFunc(handler.HandleFinish))).
		Methods("POST", "OPTIONS").Name("session-finish")
	mainRouter.HandleFunc("/session/{id}/complete", handler.HandleComplete).
		Methods("GET", "OPTIONS").Name("session-complete")
}

type emptyPlanResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.start")
	defer span.End()

	stepper, err := handler.service.Start(ctx)
	if err != nil {
		if errors.Is(err, ErrNoExercises) {
			pkg.WriteJSONResponse(w, emptyPlanResponse{
				Error:    err.Error(),
				Redirect: PlanViewPath,
			}, http.StatusConflict)
			return
		}
		log.Errorf("start session: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, stepper.View(), http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.get")
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}

	stepper, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.writeError(w, "get", id, err)
		return
	}

	pkg.WriteJSONResponseOK(w, stepper.View())
}

func (handler *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	handler.handleStep(w, r, "advance", handler.service.Advance)
}

func (handler *Handler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	handler.handleStep(w, r, "skip", handler.service.Skip)
}

func (handler *Handler) HandleRetreat(w http.ResponseWriter, r *http.Request) {
	handler.handleStep(w, r, "retreat", handler.service.Retreat)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	handler.handleStep(w, r, "finish", handler.service.Finish)
}

func (handler *Handler) handleStep(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	step func(ctx context.Context, id string) (*Stepper, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session."+op)
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}
	span.SetAttributes(attribute.String("session.id", id))

	stepper, err := step(ctx, id)
	if err != nil {
		handler.writeError(w, op, id, err)
		return
	}

	pkg.WriteJSONResponseOK(w, stepper.View())
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.complete")
	defer span.End()

	id, ok := pkg.PathID(r, "id")
	if !ok {
		pkg.WriteJSONError(w, ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}

	view, err := handler.service.Complete(ctx, id)
	if err != nil {
		handler.writeError(w, "complete", id, err)
		return
	}

	pkg.WriteJSONResponseOK(w, view)
}

func (handler *Handler) writeError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrSessionBusy),
		errors.Is(err, ErrSessionComplete),
		errors.Is(err, ErrSessionNotComplete),
		errors.Is(err, ErrNotLastStep):
		pkg.WriteJSONError(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("session %s %s: %s", id, op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
