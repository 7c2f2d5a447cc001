//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSession_FullRun() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	squat := s.addExercise(ctx, "Squat")
	s.addExercise(ctx, "Rest")
	lunge := s.addExercise(ctx, "Lunge")
	plank := s.addExercise(ctx, "Plank")

	var view session.View
	s.doJSON(ctx, "POST", "/session", nil, http.StatusCreated, &view)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, session.StatusInProgress, view.Status)
	assert.Equal(t, 3, view.Total)
	assert.True(t, view.IsFirst)
	require.NotNil(t, view.Current)
	assert.Equal(t, squat.ID, view.Current.ID)

	sessionPath := "/session/" + view.ID

	// finish is only possible from the last exercise
	status, _ := s.do(ctx, "POST", sessionPath+"/finish", nil)
	assert.Equal(t, http.StatusConflict, status)

	s.doJSON(ctx, "POST", sessionPath+"/advance", nil, http.StatusOK, &view)
	assert.Equal(t, 1, view.Position)
	assert.Equal(t, lunge.ID, view.Current.ID)
	assert.Equal(t, []string{squat.ID}, view.Completed)

	s.doJSON(ctx, "POST", sessionPath+"/retreat", nil, http.StatusOK, &view)
	assert.Equal(t, 0, view.Position)
	assert.True(t, view.CurrentDone)
	s.doJSON(ctx, "POST", sessionPath+"/retreat", nil, http.StatusOK, &view)
	assert.Equal(t, 0, view.Position)

	s.doJSON(ctx, "POST", sessionPath+"/skip", nil, http.StatusOK, &view)
	s.doJSON(ctx, "POST", sessionPath+"/skip", nil, http.StatusOK, &view)
	assert.Equal(t, 2, view.Position)
	assert.True(t, view.IsLast)
	assert.Equal(t, plank.ID, view.Current.ID)
	assert.Equal(t, 2, view.CompletedCount)

	status, _ = s.do(ctx, "GET", sessionPath+"/complete", nil)
	assert.Equal(t, http.StatusConflict, status)

	s.doJSON(ctx, "POST", sessionPath+"/advance", nil, http.StatusOK, &view)
	assert.Equal(t, session.StatusComplete, view.Status)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 3, view.Summary.CompletedCount)
	assert.Equal(t, 3, view.Summary.Total)
	assert.Equal(t, "Workout done: 3/3 exercises in 0 min", view.Summary.Notes)

	status, _ = s.do(ctx, "POST", sessionPath+"/advance", nil)
	assert.Equal(t, http.StatusConflict, status)

	var complete session.CompleteView
	s.doJSON(ctx, "GET", sessionPath+"/complete", nil, http.StatusOK, &complete)
	assert.Equal(t, view.ID, complete.Session.ID)
	require.NotNil(t, complete.TodayLog)
	assert.True(t, complete.TodayLog.Completed)
	require.NotNil(t, complete.TodayLog.Notes)
	assert.Equal(t, "Workout done: 3/3 exercises in 0 min", *complete.TodayLog.Notes)
}

func (s *IntegrationTestSuite) TestSession_EmptyPlan() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	// only the rest placeholder is planned
	s.addExercise(ctx, "Rest")

	status, respBytes := s.do(ctx, "POST", "/session", nil)
	require.Equal(t, http.StatusConflict, status)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(respBytes, &resp))
	assert.Equal(t, session.PlanViewPath, resp["redirect"])
	assert.NotEmpty(t, resp["error"])
}

func (s *IntegrationTestSuite) TestSession_Unknown() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, _ := s.do(ctx, "GET", "/session/8d9d3b36-9e4b-4bd9-9a8a-000000000000", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)

	status, _ = s.do(ctx, "POST", "/session/not-a-uuid/advance", nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}
