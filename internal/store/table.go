package store

import "slices"

// Table describes one record collection: its name, the columns a query may
// reference, and the tables whose rows are removed along with its rows
// (ON DELETE CASCADE), which matters for cache invalidation.
type Table struct {
	Name       string
	Columns    []string
	Dependents []string
}

func (t Table) HasColumn(col string) bool {
	return slices.Contains(t.Columns, col)
}

var (
	Exercises = Table{
		Name: "exercises",
		Columns: []string{
			"id", "name", "muscle_group", "reps_target", "instructions",
			"video_url", "description", "created_at",
		},
		Dependents: []string{"workout_exercises"},
	}

	Workouts = Table{
		Name:       "workouts",
		Columns:    []string{"id", "name", "date", "notes", "created_at"},
		Dependents: []string{"workout_exercises"},
	}

	WorkoutExercises = Table{
		Name: "workout_exercises",
		Columns: []string{
			"id", "workout_id", "exercise_id", "sets", "reps", "weight_kg",
			"duration_minutes", "notes", "created_at",
		},
	}

	DailyLogs = Table{
		Name:    "daily_logs",
		Columns: []string{"id", "date", "completed", "notes", "created_at"},
	}
)

// Tables lists all collections, in dependency order.
var Tables = []Table{Exercises, Workouts, WorkoutExercises, DailyLogs}
