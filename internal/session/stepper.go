package session

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/internal/store"
)

var (
	ErrNoExercises     = errors.New("no exercises in the workout plan")
	ErrNotLastStep     = errors.New("session can only be finished from the last exercise")
	ErrSessionComplete = errors.New("session is already complete")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Summary is what a finished session writes to the daily log.
type Summary struct {
	Date           store.Date `json:"date"`
	CompletedCount int        `json:"completed_count"`
	Total          int        `json:"total"`
	Minutes        int        `json:"minutes"`
	Notes          string     `json:"notes"`
}

// Stepper walks one guided session through its sequence of exercises.
// It holds no references to storage, the service persists it between steps.
type Stepper struct {
	ID         string               `json:"id"`
	Sequence   []exercises.Exercise `json:"sequence"`
	Position   int                  `json:"position"`
	Completed  []string             `json:"completed"`
	StartedAt  time.Time            `json:"started_at"`
	Status     Status               `json:"status"`
	FinishedAt *time.Time           `json:"finished_at,omitempty"`
	Summary    *Summary             `json:"summary,omitempty"`
}

// BuildSequence drops the rest placeholder from the plan and caps it at maxLen.
func BuildSequence(plan []exercises.Exercise, restName string, maxLen int) []exercises.Exercise {
	sequence := make([]exercises.Exercise, 0, len(plan))
	for _, e := range plan {
		if restName != "" && strings.TrimSpace(e.Name) == restName {
			continue
		}
		sequence = append(sequence, e)
	}
	if maxLen > 0 && len(sequence) > maxLen {
		sequence = sequence[:maxLen]
	}
	return sequence
}

func NewStepper(id string, sequence []exercises.Exercise, startedAt time.Time) (*Stepper, error) {
	if len(sequence) == 0 {
		return nil, ErrNoExercises
	}
	return &Stepper{
		ID:        id,
		Sequence:  sequence,
		Position:  0,
		Completed: []string{},
		StartedAt: startedAt,
		Status:    StatusInProgress,
	}, nil
}

func (s *Stepper) Len() int {
	return len(s.Sequence)
}

func (s *Stepper) Current() exercises.Exercise {
	return s.Sequence[s.Position]
}

func (s *Stepper) IsFirst() bool {
	return s.Position == 0
}

func (s *Stepper) IsLast() bool {
	return s.Position == len(s.Sequence)-1
}

func (s *Stepper) IsComplete() bool {
	return s.Status == StatusComplete
}

// Progress is (position+1)/length, for display only.
func (s *Stepper) Progress() float64 {
	if len(s.Sequence) == 0 {
		return 0
	}
	return float64(s.Position+1) / float64(len(s.Sequence))
}

func (s *Stepper) IsCompleted(exerciseID string) bool {
	return slices.Contains(s.Completed, exerciseID)
}

func (s *Stepper) markCurrent() {
	if id := s.Current().ID; !s.IsCompleted(id) {
		s.Completed = append(s.Completed, id)
	}
}

// Advance marks the current exercise completed and moves to the next one.
// On the last exercise the position stays and finishDue is true: the caller
// has to Finish the session.
func (s *Stepper) Advance() (finishDue bool, err error) {
	if s.IsComplete() {
		return false, ErrSessionComplete
	}

	s.markCurrent()
	if !s.IsLast() {
		s.Position++
		return false, nil
	}
	return true, nil
}

// Skip is the same as Advance, a skipped exercise counts as completed.
func (s *Stepper) Skip() (finishDue bool, err error) {
	return s.Advance()
}

// Retreat moves one exercise back, it is a no-op on the first one.
// Completion is never undone.
func (s *Stepper) Retreat() error {
	if s.IsComplete() {
		return ErrSessionComplete
	}
	if s.Position > 0 {
		s.Position--
	}
	return nil
}

// Summarize computes the daily log summary of finishing at now. The session
// must be on its last exercise. The current exercise counts as completed even
// if it was not advanced past yet.
func (s *Stepper) Summarize(now time.Time) (Summary, error) {
	if s.IsComplete() {
		return Summary{}, ErrSessionComplete
	}
	if !s.IsLast() {
		return Summary{}, ErrNotLastStep
	}

	completedCount := len(s.Completed)
	if !s.IsCompleted(s.Current().ID) {
		completedCount++
	}

	minutes := ElapsedMinutes(s.StartedAt, now)
	return Summary{
		Date:           store.DateOf(now),
		CompletedCount: completedCount,
		Total:          len(s.Sequence),
		Minutes:        minutes,
		Notes:          SummaryNotes(completedCount, len(s.Sequence), minutes),
	}, nil
}

// Complete records the final exercise and moves the session to its terminal state.
func (s *Stepper) Complete(summary Summary, finishedAt time.Time) {
	s.markCurrent()
	s.Status = StatusComplete
	s.FinishedAt = &finishedAt
	s.Summary = &summary
}

// ElapsedMinutes rounds the time between start and now to whole minutes,
// never going below zero.
func ElapsedMinutes(start, now time.Time) int {
	ms := now.Sub(start).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int(math.Round(float64(ms) / 60000))
}

func SummaryNotes(completed, total, minutes int) string {
	return fmt.Sprintf("Workout done: %d/%d exercises in %d min", completed, total, minutes)
}
