//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/fittrack/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestWorkouts_CreateWithRowsAndDelete() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	squat := s.addExercise(ctx, "Squat")
	plank := s.addExercise(ctx, "Plank")

	var detail workouts.WorkoutDetail
	s.doJSON(ctx, "POST", "/workouts", map[string]any{
		"name":  "  Leg day ",
		"date":  "2024-05-03",
		"notes": "",
		"exercises": []map[string]any{
			{"exercise_id": squat.ID, "sets": "", "reps": "10", "weight_kg": "62.5kg"},
			{"exercise_id": "", "sets": "4", "reps": "8"},
			{"exercise_id": plank.ID, "sets": 3, "duration_minutes": "2 min", "weight_kg": "abc"},
		},
	}, http.StatusCreated, &detail)

	assert.Equal(t, "Leg day", detail.Name)
	assert.Equal(t, "2024-05-03", detail.Date.String())
	assert.Nil(t, detail.Notes)
	require.Len(t, detail.Exercises, 2)

	first := detail.Exercises[0]
	assert.Equal(t, squat.ID, first.ExerciseID)
	assert.Equal(t, 1, first.Sets)
	require.NotNil(t, first.Reps)
	assert.Equal(t, 10, *first.Reps)
	require.NotNil(t, first.WeightKg)
	assert.InDelta(t, 62.5, *first.WeightKg, 0.001)
	require.NotNil(t, first.Exercise)
	assert.Equal(t, "Squat", first.Exercise.Name)

	second := detail.Exercises[1]
	assert.Equal(t, plank.ID, second.ExerciseID)
	assert.Equal(t, 3, second.Sets)
	assert.Nil(t, second.Reps)
	assert.Nil(t, second.WeightKg)
	require.NotNil(t, second.DurationMinutes)
	assert.Equal(t, 2, *second.DurationMinutes)

	var got workouts.WorkoutDetail
	s.doJSON(ctx, "GET", "/workouts/"+detail.ID, nil, http.StatusOK, &got)
	require.Len(t, got.Exercises, 2)
	assert.Equal(t, squat.ID, got.Exercises[0].ExerciseID)
	assert.Equal(t, plank.ID, got.Exercises[1].ExerciseID)

	status, _ := s.do(ctx, "DELETE", "/workouts/"+detail.ID, nil)
	assert.Equal(t, http.StatusPreconditionRequired, status)

	status, _ = s.do(ctx, "DELETE", "/workouts/"+detail.ID+"?confirm=true", nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = s.do(ctx, "GET", "/workouts/"+detail.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// rows went with their workout, exercises stayed
	var rows int
	require.NoError(t, s.dbPool.QueryRow(ctx, "SELECT count(*) FROM workout_exercises").Scan(&rows))
	assert.Zero(t, rows)
	var exerciseRows int
	require.NoError(t, s.dbPool.QueryRow(ctx, "SELECT count(*) FROM exercises").Scan(&exerciseRows))
	assert.Equal(t, 2, exerciseRows)
}

func (s *IntegrationTestSuite) TestWorkouts_UnknownExerciseRollsBack() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, respBytes := s.do(ctx, "POST", "/workouts", map[string]any{
		"name": "Ghost day",
		"date": "2024-05-03",
		"exercises": []map[string]any{
			{"exercise_id": "8d9d3b36-9e4b-4bd9-9a8a-000000000000", "sets": "3"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "unknown exercise selected", s.errorMessage(respBytes))

	var list []workouts.Workout
	s.doJSON(ctx, "GET", "/workouts", nil, http.StatusOK, &list)
	assert.Empty(t, list)
}

func (s *IntegrationTestSuite) TestWorkouts_ListLatestFirst() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	for day := 1; day <= 12; day++ {
		s.doJSON(ctx, "POST", "/workouts", map[string]any{
			"name": fmt.Sprintf("workout %d", day),
			"date": fmt.Sprintf("2024-05-%02d", day),
		}, http.StatusCreated, nil)
	}

	var list []workouts.Workout
	s.doJSON(ctx, "GET", "/workouts", nil, http.StatusOK, &list)
	require.Len(t, list, workouts.DefaultListLimit)
	assert.Equal(t, "2024-05-12", list[0].Date.String())
	assert.Equal(t, "2024-05-03", list[len(list)-1].Date.String())

	s.doJSON(ctx, "GET", "/workouts?limit=3", nil, http.StatusOK, &list)
	require.Len(t, list, 3)
	assert.Equal(t, "workout 10", list[2].Name)
}
