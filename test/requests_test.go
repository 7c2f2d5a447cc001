//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/fittrack/internal/exercises"
	"github.com/2beens/fittrack/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// do sends a request to the running server and returns the status and body.
// A non-nil payload is sent as JSON.
func (s *IntegrationTestSuite) do(
	ctx context.Context,
	method, path string,
	payload any,
	headers ...string,
) (int, []byte) {
	t := s.T()

	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

// doJSON is do plus a status check and decoding of the response into dst.
func (s *IntegrationTestSuite) doJSON(
	ctx context.Context,
	method, path string,
	payload any,
	expectedStatus int,
	dst any,
) {
	status, respBytes := s.do(ctx, method, path, payload)
	require.Equal(s.T(), expectedStatus, status, string(respBytes))
	if dst != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, dst))
	}
}

func (s *IntegrationTestSuite) errorMessage(respBytes []byte) string {
	var errResp pkg.ErrorResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &errResp))
	return errResp.Error
}

func (s *IntegrationTestSuite) addExercise(ctx context.Context, name string) exercises.Exercise {
	muscleGroup := gofakeit.RandomString([]string{"legs", "chest", "back", "core"})
	var added exercises.Exercise
	s.doJSON(ctx, "POST", "/exercises", exercises.NewExercise{
		Name:        name,
		MuscleGroup: &muscleGroup,
	}, http.StatusCreated, &added)
	return added
}
