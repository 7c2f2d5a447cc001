//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/dailylog"
	"github.com/2beens/fittrack/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestDailyLogs_UpsertReplaces() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	var first dailylog.DailyLog
	s.doJSON(ctx, "POST", "/daily-logs", map[string]any{
		"date":  "2024-05-03",
		"notes": "morning run",
	}, http.StatusOK, &first)
	assert.True(t, first.Completed)
	require.NotNil(t, first.Notes)
	assert.Equal(t, "morning run", *first.Notes)

	// same date again: one row, notes replaced
	var second dailylog.DailyLog
	s.doJSON(ctx, "POST", "/daily-logs", map[string]any{
		"date": "2024-05-03",
	}, http.StatusOK, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.Notes)

	var list []dailylog.DailyLog
	s.doJSON(ctx, "GET", "/daily-logs", nil, http.StatusOK, &list)
	require.Len(t, list, 1)

	var byDate dailylog.DailyLog
	s.doJSON(ctx, "GET", "/daily-logs/date/2024-05-03", nil, http.StatusOK, &byDate)
	assert.Equal(t, first.ID, byDate.ID)

	status, _ := s.do(ctx, "GET", "/daily-logs/date/2024-05-04", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(ctx, "DELETE", "/daily-logs/"+first.ID, nil)
	assert.Equal(t, http.StatusPreconditionRequired, status)
	status, _ = s.do(ctx, "DELETE", "/daily-logs/"+first.ID, nil, "X-Confirm", "true")
	assert.Equal(t, http.StatusNoContent, status)

	s.doJSON(ctx, "GET", "/daily-logs", nil, http.StatusOK, &list)
	assert.Empty(t, list)
}

func (s *IntegrationTestSuite) TestDailyLogs_Stats() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	today := store.DateOf(time.Now().UTC())
	for _, date := range []store.Date{
		today,
		today.AddDays(-2),
		today.AddDays(-40),
		today.AddDays(-400),
	} {
		s.doJSON(ctx, "POST", "/daily-logs", map[string]any{"date": date.String()}, http.StatusOK, nil)
	}

	var stats dailylog.Stats
	s.doJSON(ctx, "GET", "/daily-logs/stats", nil, http.StatusOK, &stats)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.LastWeek)

	thisMonth := int64(1)
	if !today.AddDays(-2).Time().Before(today.StartOfMonth().Time()) {
		thisMonth++
	}
	assert.Equal(t, thisMonth, stats.ThisMonth)
}
