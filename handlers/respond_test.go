package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psatpute/HOA-OPs-AI/repositories"
)

func requestWithQuery(t *testing.T, query string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/things?"+query, nil)
	require.NoError(t, err)
	return req
}

func TestParsePaginationDefaults(t *testing.T) {
	skip, limit := parsePagination(requestWithQuery(t, ""))

	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(50), limit)
}

func TestParsePaginationClamping(t *testing.T) {
	tests := []struct {
		query     string
		wantSkip  int64
		wantLimit int64
	}{
		{"limit=20&skip=40", 40, 20},
		{"limit=500", 0, 100},
		{"limit=0", 0, 1},
		{"limit=-5", 0, 1},
		{"skip=-10", 0, 50},
		{"limit=abc&skip=xyz", 0, 50},
		{"limit=100", 0, 100},
	}
	for _, tt := range tests {
		skip, limit := parsePagination(requestWithQuery(t, tt.query))
		assert.Equal(t, tt.wantSkip, skip, "query=%q", tt.query)
		assert.Equal(t, tt.wantLimit, limit, "query=%q", tt.query)
	}
}

func TestParseBoolParam(t *testing.T) {
	assert.True(t, parseBoolParam(requestWithQuery(t, "includeArchived=true"), "includeArchived"))
	assert.False(t, parseBoolParam(requestWithQuery(t, "includeArchived=false"), "includeArchived"))
	assert.False(t, parseBoolParam(requestWithQuery(t, "includeArchived=maybe"), "includeArchived"))
	assert.False(t, parseBoolParam(requestWithQuery(t, ""), "includeArchived"))
}

func TestRespondLookupError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		{repositories.ErrNotFound, http.StatusNotFound, "Project not found"},
		{repositories.ErrInvalidID, http.StatusNotFound, "Project not found"},
		{errors.New("connection reset"), http.StatusInternalServerError, "connection reset"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		respondLookupError(rec, tt.err, "Project not found")

		assert.Equal(t, tt.wantStatus, rec.Code)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.wantBody, body.Error)
	}
}

func TestRespondJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusCreated, messageResponse{Message: "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
