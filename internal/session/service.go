package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/dailylog"
	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=session_test

var (
	ErrFinishFailed       = errors.New("finish session")
	ErrSessionNotComplete = errors.New("session is not complete yet")
)

type exercisePlan interface {
	List(ctx context.Context, params exercises.ListParams) (_ []exercises.Exercise, err error)
}

type dailyLogWriter interface {
	Upsert(ctx context.Context, date store.Date, notes *string) (_ dailylog.DailyLog, err error)
	GetByDate(ctx context.Context, date store.Date) (_ dailylog.DailyLog, err error)
}

type sessionStore interface {
	Get(ctx context.Context, id string) (_ *Stepper, err error)
	Save(ctx context.Context, stepper *Stepper) (err error)
	Lock(ctx context.Context, id string) (unlock func(), err error)
}

type ServiceParams struct {
	Plan             exercisePlan
	DailyLogs        dailyLogWriter
	Sessions         sessionStore
	MetricsManager   *metrics.Manager
	MaxExercises     int
	RestExerciseName string
}

type Service struct {
	plan             exercisePlan
	dailyLogs        dailyLogWriter
	sessions         sessionStore
	metricsManager   *metrics.Manager
	maxExercises     int
	restExerciseName string

	// injectable for tests
	NowFunc   func() time.Time
	NewIDFunc func() string
}

func NewService(params ServiceParams) *Service {
	return &Service{
		plan:             params.Plan,
		dailyLogs:        params.DailyLogs,
		sessions:         params.Sessions,
		metricsManager:   params.MetricsManager,
		maxExercises:     params.MaxExercises,
		restExerciseName: params.RestExerciseName,
		NowFunc:          time.Now,
		NewIDFunc:        uuid.NewString,
	}
}

// Start fetches the workout plan and begins a new session on its first exercise.
func (s *Service) Start(ctx context.Context) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, err := s.plan.List(ctx, exercises.ListParams{
		Sort:  exercises.SortByCreatedAt,
		Limit: s.maxExercises,
	})
	if err != nil {
		return nil, fmt.Errorf("get workout plan: %w", err)
	}

	sequence := BuildSequence(plan, s.restExerciseName, s.maxExercises)
	stepper, err := NewStepper(s.NewIDFunc(), sequence, s.NowFunc())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("session.id", stepper.ID),
		attribute.Int("session.length", stepper.Len()),
	)

	if err := s.sessions.Save(ctx, stepper); err != nil {
		return nil, err
	}

	s.metricsManager.CounterSessionsStarted.Inc()
	log.Debugf("session %s started with %d exercises", stepper.ID, stepper.Len())
	return stepper, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.get")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.sessions.Get(ctx, id)
}

// Advance completes the current exercise and moves on, finishing the session
// when it was the last one.
func (s *Service) Advance(ctx context.Context, id string) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.advance")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.step(ctx, id, func(ctx context.Context, stepper *Stepper) error {
		finishDue, err := stepper.Advance()
		if err != nil || !finishDue {
			return err
		}
		return s.finish(ctx, stepper)
	})
}

func (s *Service) Skip(ctx context.Context, id string) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.skip")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.step(ctx, id, func(ctx context.Context, stepper *Stepper) error {
		finishDue, err := stepper.Skip()
		if err != nil || !finishDue {
			return err
		}
		return s.finish(ctx, stepper)
	})
}

func (s *Service) Retreat(ctx context.Context, id string) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.retreat")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.step(ctx, id, func(_ context.Context, stepper *Stepper) error {
		return stepper.Retreat()
	})
}

// Finish writes today's daily log from the last exercise. It is the retry path
// after a failed finish.
func (s *Service) Finish(ctx context.Context, id string) (_ *Stepper, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.finish")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.step(ctx, id, s.finish)
}

// CompleteView is the end of session screen: the summary and today's log.
type CompleteView struct {
	Session  View               `json:"session"`
	TodayLog *dailylog.DailyLog `json:"today_log"`
}

func (s *Service) Complete(ctx context.Context, id string) (_ CompleteView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.complete")
	span.SetAttributes(attribute.String("session.id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stepper, err := s.sessions.Get(ctx, id)
	if err != nil {
		return CompleteView{}, err
	}
	if !stepper.IsComplete() {
		return CompleteView{}, ErrSessionNotComplete
	}

	view := CompleteView{Session: stepper.View()}
	todayLog, err := s.dailyLogs.GetByDate(ctx, store.DateOf(s.NowFunc()))
	switch {
	case err == nil:
		view.TodayLog = &todayLog
	case errors.Is(err, store.ErrNotFound):
		// shown without the log
	default:
		log.Errorf("session %s complete view, get today's log: %s", id, err)
	}

	return view, nil
}

// step runs one mutation of a session under its lock. A failed finish is
// still saved: the completion marks are kept and finish can be retried.
func (s *Service) step(ctx context.Context, id string, mutate func(ctx context.Context, stepper *Stepper) error) (*Stepper, error) {
	unlock, err := s.sessions.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	stepper, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mutateErr := mutate(ctx, stepper)
	if mutateErr != nil && !errors.Is(mutateErr, ErrFinishFailed) {
		return stepper, mutateErr
	}

	if err := s.sessions.Save(ctx, stepper); err != nil {
		return stepper, err
	}
	return stepper, mutateErr
}

func (s *Service) finish(ctx context.Context, stepper *Stepper) error {
	now := s.NowFunc()
	summary, err := stepper.Summarize(now)
	if err != nil {
		return err
	}

	notes := summary.Notes
	if _, err := s.dailyLogs.Upsert(ctx, summary.Date, &notes); err != nil {
		s.metricsManager.CounterSessionFinishFailures.Inc()
		log.Errorf("session %s finish: %s", stepper.ID, err)
		return fmt.Errorf("%w: %w", ErrFinishFailed, err)
	}

	stepper.Complete(summary, now)
	s.metricsManager.CounterSessionsFinished.Inc()
	s.metricsManager.HistogramSessionMinutes.Observe(float64(summary.Minutes))
	log.Debugf("session %s finished: %s", stepper.ID, summary.Notes)
	return nil
}
