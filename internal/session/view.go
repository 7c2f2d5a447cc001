package session

import (
	"time"

	"github.com/2beens/fittrack/internal/exercises"
)

// View is the JSON form of a session as the step screen shows it.
type View struct {
	ID             string              `json:"id"`
	Status         Status              `json:"status"`
	Position       int                 `json:"position"`
	Total          int                 `json:"total"`
	Progress       float64             `json:"progress"`
	IsFirst        bool                `json:"is_first"`
	IsLast         bool                `json:"is_last"`
	Current        *exercises.Exercise `json:"current"`
	CurrentDone    bool                `json:"current_done"`
	Completed      []string            `json:"completed"`
	CompletedCount int                 `json:"completed_count"`
	StartedAt      time.Time           `json:"started_at"`
	FinishedAt     *time.Time          `json:"finished_at,omitempty"`
	Summary        *Summary            `json:"summary,omitempty"`
}

func (s *Stepper) View() View {
	current := s.Current()
	return View{
		ID:             s.ID,
		Status:         s.Status,
		Position:       s.Position,
		Total:          s.Len(),
		Progress:       s.Progress(),
		IsFirst:        s.IsFirst(),
		IsLast:         s.IsLast(),
		Current:        &current,
		CurrentDone:    s.IsCompleted(current.ID),
		Completed:      s.Completed,
		CompletedCount: len(s.Completed),
		StartedAt:      s.StartedAt,
		FinishedAt:     s.FinishedAt,
		Summary:        s.Summary,
	}
}
