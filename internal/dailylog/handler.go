package dailylog

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dailylog_test

type dailyLogRepo interface {
	List(ctx context.Context, limit int) (_ []DailyLog, err error)
	GetByDate(ctx context.Context, date store.Date) (_ DailyLog, err error)
	Upsert(ctx context.Context, date store.Date, notes *string) (_ DailyLog, err error)
	Delete(ctx context.Context, id string) (err error)
	Stats(ctx context.Context, today store.Date) (_ Stats, err error)
}

type Handler struct {
	repo dailyLogRepo
	now  func() time.Time
}

func NewHandler(repo dailyLogRepo, now func() time.Time) *Handler {
	return &Handler{
		repo: repo,
		now:  now,
	}
}

func (handler *Handler) today() store.Date {
	return store.DateOf(handler.now())
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.list")
	defer span.End()

	logs, err := handler.repo.List(ctx, DefaultListLimit)
	if err != nil {
		log.Errorf("list daily logs: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, logs)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.stats")
	defer span.End()

	stats, err := handler.repo.Stats(ctx, handler.today())
	if err != nil {
		log.Errorf("daily log stats: %s", err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, stats)
}

func (handler *Handler) HandleGetByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.getByDate")
	defer span.End()

	date, err := store.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("date", date.String()))

	dailyLog, err := handler.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			pkg.WriteJSONError(w, "not found", http.StatusNotFound)
			return
		}
		log.Errorf("get daily log %s: %s", date, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, dailyLog)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.upsert")
	defer span.End()

	var entry Entry
	if err := pkg.DecodeJSONBody(r, &entry); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := pkg.Validate(entry); err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := handler.today()
	if dateParam := strings.TrimSpace(entry.Date); dateParam != "" {
		parsed, err := store.ParseDate(dateParam)
		if err != nil {
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		date = parsed
	}

	dailyLog, err := handler.repo.Upsert(ctx, date, entry.Notes)
	if err != nil {
		log.Errorf("upsert daily log %s: %s", date, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("daily log saved for %s [%s]", dailyLog.Date, dailyLog.ID)
	pkg.WriteJSONResponseOK(w, dailyLog)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dailylog.delete")
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
		log.Errorf("delete daily log %s: %s", id, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("daily log %s deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
