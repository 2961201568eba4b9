package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/poiesic/confsearch/core"
	"github.com/poiesic/confsearch/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSearcher is a canned Searcher for handler tests.
type stubSearcher struct {
	response *core.QueryResponse
	overview core.Overview
	err      error
}

func (s *stubSearcher) Search(_ context.Context, q string) (*core.QueryResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	response := *s.response
	response.Query = q
	return &response, nil
}

func (s *stubSearcher) Overview(_ context.Context) (core.Overview, error) {
	return s.overview, s.err
}

func doRequest(t *testing.T, svc Searcher, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	New(svc).Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, &stubSearcher{}, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSearch(t *testing.T) {
	svc := &stubSearcher{
		response: &core.QueryResponse{
			Summary:           "Found 1 session related to \"poster sessions\".",
			ContextualSummary: "context",
			Results: []core.SearchResult{
				{SessionID: "WE.P1", SessionTitle: "SAR Applications Posters"},
			},
		},
	}

	rec := doRequest(t, svc, http.MethodPost, "/api/search", `{"query": "poster sessions"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var response core.QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "poster sessions", response.Query)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "WE.P1", response.Results[0].SessionID)
}

func TestSearch_EmptyQuery(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"blank query", `{"query": "   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubSearcher{}, http.MethodPost, "/api/search", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestSearch_CorpusUnavailable(t *testing.T) {
	svc := &stubSearcher{err: query.ErrCorpusUnavailable}

	rec := doRequest(t, svc, http.MethodPost, "/api/search", `{"query": "anything"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no conference program loaded")
}

func TestSearch_InternalError(t *testing.T) {
	svc := &stubSearcher{err: errors.New("backend exploded")}

	rec := doRequest(t, svc, http.MethodPost, "/api/search", `{"query": "anything"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOverview(t *testing.T) {
	svc := &stubSearcher{
		overview: core.Overview{
			Name:          "IGARSS 2025",
			Dates:         "August 3-8, 2025",
			Location:      "Brisbane, Australia",
			TotalDays:     5,
			TotalSessions: 400,
			TotalPapers:   2800,
		},
	}

	rec := doRequest(t, svc, http.MethodGet, "/api/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var overview core.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, svc.overview, overview)
}

func TestOverview_CorpusUnavailable(t *testing.T) {
	svc := &stubSearcher{err: query.ErrCorpusUnavailable}

	rec := doRequest(t, svc, http.MethodGet, "/api/overview", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
