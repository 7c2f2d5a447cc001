package diagnostics

import (
	"context"
	"slices"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

// CheckedExerciseColumns are the optional exercise columns added after the
// first schema version.
var CheckedExerciseColumns = []string{"reps_target", "instructions", "video_url"}

type database interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context, table store.Table) (int64, error)
	Columns(ctx context.Context, table store.Table) ([]string, error)
}

type ConnectionCheck struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type TableCheck struct {
	Table   string `json:"table"`
	Success bool   `json:"success"`
	Exists  bool   `json:"exists"`
	Count   int64  `json:"count"`
	Error   string `json:"error,omitempty"`
}

type FieldsCheck struct {
	Success bool            `json:"success"`
	Fields  map[string]bool `json:"fields"`
	Error   string          `json:"error,omitempty"`
}

// Report is the result of one connectivity check. It only reads.
type Report struct {
	Connection     ConnectionCheck `json:"connection"`
	Tables         []TableCheck    `json:"tables"`
	ExerciseFields FieldsCheck     `json:"exercise_fields"`
	CheckedAt      time.Time       `json:"checked_at"`
}

type Checker struct {
	db  database
	now func() time.Time
}

func NewChecker(db database, now func() time.Time) *Checker {
	return &Checker{
		db:  db,
		now: now,
	}
}

// Run checks the connection, each table and the exercise columns. A failing
// check is reported, it never stops the following ones.
func (c *Checker) Run(ctx context.Context) Report {
	ctx, span := tracing.GlobalTracer.Start(ctx, "diagnostics.run")
	defer span.End()

	report := Report{
		CheckedAt: c.now(),
		Tables:    make([]TableCheck, 0, len(store.Tables)),
	}

	if err := c.db.Ping(ctx); err != nil {
		report.Connection.Error = err.Error()
	} else {
		report.Connection.Success = true
	}

	for _, table := range store.Tables {
		check := TableCheck{Table: table.Name}
		count, err := c.db.Count(ctx, table)
		if err != nil {
			check.Error = err.Error()
			// only a server answer tells whether the table is there
			check.Exists = pkg.IsServerError(err) && !pkg.IsUndefinedTableError(err)
		} else {
			check.Success = true
			check.Exists = true
			check.Count = count
		}
		report.Tables = append(report.Tables, check)
	}

	report.ExerciseFields = c.checkExerciseFields(ctx)
	return report
}

func (c *Checker) checkExerciseFields(ctx context.Context) FieldsCheck {
	check := FieldsCheck{Fields: make(map[string]bool, len(CheckedExerciseColumns))}
	for _, col := range CheckedExerciseColumns {
		check.Fields[col] = false
	}

	columns, err := c.db.Columns(ctx, store.Exercises)
	if err != nil {
		check.Error = err.Error()
		return check
	}
	if len(columns) == 0 {
		check.Error = "table exercises not found"
		return check
	}

	check.Success = true
	for _, col := range CheckedExerciseColumns {
		check.Fields[col] = slices.Contains(columns, col)
	}
	return check
}

// StoreDatabase runs the checks against the store, bypassing the list cache.
type StoreDatabase struct {
	store *store.Store
}

func NewStoreDatabase(s *store.Store) *StoreDatabase {
	return &StoreDatabase{
		store: s.Uncached(),
	}
}

func (sd *StoreDatabase) Ping(ctx context.Context) error {
	return sd.store.Ping(ctx)
}

func (sd *StoreDatabase) Count(ctx context.Context, table store.Table) (int64, error) {
	return store.Count(ctx, sd.store, store.From(table))
}

func (sd *StoreDatabase) Columns(ctx context.Context, table store.Table) ([]string, error) {
	return store.Columns(ctx, sd.store, table)
}
