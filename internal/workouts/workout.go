package workouts

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/internal/store"
)

const DefaultSets = 1

type Workout struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Date      store.Date `db:"date" json:"date"`
	Notes     *string    `db:"notes" json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type WorkoutExercise struct {
	ID              string    `db:"id" json:"id"`
	WorkoutID       string    `db:"workout_id" json:"workout_id"`
	ExerciseID      string    `db:"exercise_id" json:"exercise_id"`
	Sets            int       `db:"sets" json:"sets"`
	Reps            *int      `db:"reps" json:"reps"`
	WeightKg        *float64  `db:"weight_kg" json:"weight_kg"`
	DurationMinutes *int      `db:"duration_minutes" json:"duration_minutes"`
	Notes           *string   `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`

	Exercise *exercises.Exercise `db:"-" json:"exercise"`
}

type WorkoutDetail struct {
	Workout
	Exercises []WorkoutExercise `json:"exercises"`
}

// NewWorkout is the workout creator form.
type NewWorkout struct {
	Name      string               `json:"name" validate:"required"`
	Date      string               `json:"date" validate:"required"`
	Notes     *string              `json:"notes"`
	Exercises []NewWorkoutExercise `json:"exercises" validate:"dive"`
}

// NewWorkoutExercise is one row of the creator form. Rows without an exercise
// selected are ignored.
type NewWorkoutExercise struct {
	ExerciseID      string    `json:"exercise_id" validate:"omitempty,uuid"`
	Sets            FormValue `json:"sets"`
	Reps            FormValue `json:"reps"`
	WeightKg        FormValue `json:"weight_kg"`
	DurationMinutes FormValue `json:"duration_minutes"`
	Notes           *string   `json:"notes"`
}

// WorkoutInput is a parsed NewWorkout, ready to be stored.
type WorkoutInput struct {
	Name  string
	Date  store.Date
	Notes *string
	Items []WorkoutExerciseInput
}

type WorkoutExerciseInput struct {
	ExerciseID      string
	Sets            int
	Reps            *int
	WeightKg        *float64
	DurationMinutes *int
	Notes           *string
}

// Parse turns the form into a WorkoutInput: rows without exercise are dropped,
// sets default to 1 and unparsable optional numbers become null.
func (nw NewWorkout) Parse() (WorkoutInput, error) {
	date, err := store.ParseDate(strings.TrimSpace(nw.Date))
	if err != nil {
		return WorkoutInput{}, err
	}

	input := WorkoutInput{
		Name:  strings.TrimSpace(nw.Name),
		Date:  date,
		Notes: emptyToNil(nw.Notes),
		Items: []WorkoutExerciseInput{},
	}
	for _, row := range nw.Exercises {
		if strings.TrimSpace(row.ExerciseID) == "" {
			continue
		}
		input.Items = append(input.Items, WorkoutExerciseInput{
			ExerciseID:      strings.TrimSpace(row.ExerciseID),
			Sets:            row.Sets.IntOr(DefaultSets),
			Reps:            row.Reps.Int(),
			WeightKg:        row.WeightKg.Float(),
			DurationMinutes: row.DurationMinutes.Int(),
			Notes:           emptyToNil(row.Notes),
		})
	}

	return input, nil
}

func (in WorkoutInput) values() store.Values {
	return store.Values{
		"name":  in.Name,
		"date":  in.Date,
		"notes": in.Notes,
	}
}

func (in WorkoutExerciseInput) values(workoutID string) store.Values {
	return store.Values{
		"workout_id":       workoutID,
		"exercise_id":      in.ExerciseID,
		"sets":             in.Sets,
		"reps":             in.Reps,
		"weight_kg":        in.WeightKg,
		"duration_minutes": in.DurationMinutes,
		"notes":            in.Notes,
	}
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
