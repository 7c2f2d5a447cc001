package dailylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrDailyLogNotFound = fmt.Errorf("daily log %w", store.ErrNotFound)

type Repo struct {
	store          *store.Store
	metricsManager *metrics.Manager
}

func NewRepo(s *store.Store, metricsManager *metrics.Manager) *Repo {
	return &Repo{
		store:          s,
		metricsManager: metricsManager,
	}
}

// List returns the latest logs, newest date first.
func (r *Repo) List(ctx context.Context, limit int) (_ []DailyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.list")
	span.SetAttributes(attribute.Int("limit", limit))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := store.Select[DailyLog](ctx, r.store,
		store.From(store.DailyLogs).Order("date", true).Limit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

func (r *Repo) GetByDate(ctx context.Context, date store.Date) (_ DailyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.getByDate")
	span.SetAttributes(attribute.String("date", date.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dailyLog, err := store.Single[DailyLog](ctx, r.store, store.From(store.DailyLogs).Eq("date", date))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DailyLog{}, ErrDailyLogNotFound
		}
		return DailyLog{}, fmt.Errorf("get daily log: %w", err)
	}
	return dailyLog, nil
}

// Upsert marks the date as completed, replacing the notes of an existing log
// for that date.
func (r *Repo) Upsert(ctx context.Context, date store.Date, notes *string) (_ DailyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.upsert")
	span.SetAttributes(attribute.String("date", date.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dailyLog, err := store.Upsert[DailyLog](ctx, r.store, store.DailyLogs, "date", upsertValues(date, notes))
	if err != nil {
		return DailyLog{}, fmt.Errorf("upsert daily log: %w", err)
	}

	r.metricsManager.CounterDailyLogsWritten.Inc()
	return dailyLog, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.delete")
	span.SetAttributes(attribute.String("dailylog.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := store.Delete(ctx, r.store, store.DailyLogs, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDailyLogNotFound
		}
		return fmt.Errorf("delete daily log: %w", err)
	}
	return nil
}

// Stats counts all logs, the logs of the 7 days up to today and the logs of
// today's month.
func (r *Repo) Stats(ctx context.Context, today store.Date) (_ Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailylog.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats Stats
	if stats.Total, err = store.Count(ctx, r.store, store.From(store.DailyLogs)); err != nil {
		return Stats{}, fmt.Errorf("count daily logs: %w", err)
	}
	if stats.LastWeek, err = store.Count(ctx, r.store,
		store.From(store.DailyLogs).Gte("date", today.AddDays(-7)),
	); err != nil {
		return Stats{}, fmt.Errorf("count weekly daily logs: %w", err)
	}
	if stats.ThisMonth, err = store.Count(ctx, r.store,
		store.From(store.DailyLogs).Gte("date", today.StartOfMonth()),
	); err != nil {
		return Stats{}, fmt.Errorf("count monthly daily logs: %w", err)
	}

	return stats, nil
}
