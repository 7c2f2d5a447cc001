package dailylog

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/store"
)

const DefaultListLimit = 30

type DailyLog struct {
	ID        string     `db:"id" json:"id"`
	Date      store.Date `db:"date" json:"date"`
	Completed bool       `db:"completed" json:"completed"`
	Notes     *string    `db:"notes" json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Entry is the daily log form. An empty date means today.
type Entry struct {
	Date  string  `json:"date"`
	Notes *string `json:"notes" validate:"omitnil,max=2000"`
}

// Stats are the simple counters shown above the log list.
type Stats struct {
	Total     int64 `json:"total"`
	LastWeek  int64 `json:"last_week"`
	ThisMonth int64 `json:"this_month"`
}

// NotesOrNil trims notes, turning blank notes into nil.
func NotesOrNil(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func upsertValues(date store.Date, notes *string) store.Values {
	return store.Values{
		"date":      date,
		"completed": true,
		"notes":     NotesOrNil(notes),
	}
}
