//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/diagnostics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestDiagnostics() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	s.addExercise(ctx, "Squat")
	s.addExercise(ctx, "Plank")

	var report diagnostics.Report
	s.doJSON(ctx, "GET", "/diagnostics", nil, http.StatusOK, &report)

	assert.True(t, report.Connection.Success)
	require.Len(t, report.Tables, 4)
	for _, table := range report.Tables {
		assert.True(t, table.Success, table.Table)
		assert.True(t, table.Exists, table.Table)
		if table.Table == "exercises" {
			assert.Equal(t, int64(2), table.Count)
		} else {
			assert.Zero(t, table.Count, table.Table)
		}
	}

	assert.True(t, report.ExerciseFields.Success)
	for _, col := range diagnostics.CheckedExerciseColumns {
		assert.True(t, report.ExerciseFields.Fields[col], col)
	}
}

func (s *IntegrationTestSuite) TestServiceInfo() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, respBytes := s.do(ctx, "GET", "/version", nil)
	assert.Equal(s.T(), http.StatusOK, status)
	assert.Equal(s.T(), "test-version-info", string(respBytes))
}
