package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/api/v1/mocks"
	"github.com/vmunix/reelsearch/internal/feedback"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	searcher *mocks.MockSearcher
	feedback *mocks.MockFeedbackService
	cache    *mocks.MockCacheClearer
	handler  http.Handler
}

func newTestServer(t *testing.T, cfg Config) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	ts := &testServer{
		searcher: mocks.NewMockSearcher(ctrl),
		feedback: mocks.NewMockFeedbackService(ctrl),
		cache:    mocks.NewMockCacheClearer(ctrl),
	}
	srv, err := NewWithDeps(ServerDeps{
		Searcher: ts.searcher,
		Feedback: ts.feedback,
		Cache:    ts.cache,
	}, cfg, testLogger())
	require.NoError(t, err)
	ts.handler = srv.Handler()
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestNewWithDeps_RequiresSearcher(t *testing.T) {
	_, err := NewWithDeps(ServerDeps{}, Config{}, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestSearch_OK(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().
		Search(gomock.Any(), aggregator.Request{Query: "batman", Page: 2, UserID: "u1"}).
		Return(&aggregator.Response{
			TotalResults: 15, TotalPages: 2, Page: 2,
			Search: []aggregator.Result{{ID: 272, Title: "Batman Begins"}},
		}, nil)

	w := ts.do(http.MethodGet, "/search?query=batman&page=2&userId=u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode[aggregator.Response](t, w)
	assert.Equal(t, 15, resp.TotalResults)
	assert.Equal(t, 2, resp.TotalPages)
	assert.False(t, resp.HasMore)
	require.Len(t, resp.Search, 1)
	assert.Equal(t, "Batman Begins", resp.Search[0].Title)
}

func TestSearch_LegacyRoute(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().
		Search(gomock.Any(), aggregator.Request{Query: "heat", Page: 1}).
		Return(&aggregator.Response{Page: 1, Search: []aggregator.Result{}}, nil)

	w := ts.do(http.MethodGet, "/api/search?q=heat", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearch_BadPageFallsBackToFirst(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().
		Search(gomock.Any(), aggregator.Request{Query: "heat", Page: 1}).
		Return(&aggregator.Response{Page: 1, Search: []aggregator.Result{}}, nil)

	w := ts.do(http.MethodGet, "/search?query=heat&page=abc", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearch_EmptyQuery(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, aggregator.ErrEmptyQuery)

	w := ts.do(http.MethodGet, "/search?query=", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[errorResponse](t, w)
	assert.Equal(t, "Search query is required", resp.Error)
	assert.Equal(t, "INVALID_QUERY", resp.Code)
}

func TestSearch_AllProvidersFailedIsEmptyPage(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(&aggregator.Response{Page: 1, Search: []aggregator.Result{}}, nil)

	w := ts.do(http.MethodGet, "/search?query=batman", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalResults":0,"totalPages":0,"page":1,"hasMore":false,"Search":[]}`, w.Body.String())
}

func TestSearch_InternalError(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(nil, &aggregator.InternalError{Op: "search", Err: errors.New("boom")})

	w := ts.do(http.MethodGet, "/search?query=batman", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[errorResponse](t, w)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Contains(t, resp.Message, "boom")
}

func TestSearch_PanicRecovered(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, aggregator.Request) (*aggregator.Response, error) {
			panic("nil map")
		})

	w := ts.do(http.MethodGet, "/search?query=batman", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode[errorResponse](t, w)
	assert.Equal(t, "Internal server error", resp.Error)
	assert.Equal(t, "nil map", resp.Message)
}

func TestFeedback_Store(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.feedback.EXPECT().StoreFeedback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *feedback.Record) error {
			assert.Equal(t, "u1", rec.UserID)
			assert.Equal(t, []string{"genre:Crime"}, rec.MatchFactors)
			require.Len(t, rec.SearchResults, 1)
			assert.Equal(t, "949", rec.SearchResults[0].MovieID)
			return nil
		})

	w := ts.do(http.MethodPost, "/feedback", `{
		"userId":"u1","rating":"positive","matchFactors":["genre:Crime"],
		"searchResults":[{"movieId":"949","title":"Heat","position":1,"clicked":true}]
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Feedback stored successfully", decode[messageResponse](t, w).Message)
}

func TestFeedback_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		storeErr error
		wantCode int
		wantErr  string
	}{
		{"bad json", `{`, nil, http.StatusBadRequest, ""},
		{"invalid", `{"rating":"positive"}`, fmt.Errorf("%w: userId is required", feedback.ErrInvalidFeedback), http.StatusBadRequest, ""},
		{"store failure", `{"userId":"u1"}`, errors.New("disk full"), http.StatusInternalServerError, "Error storing feedback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, Config{})
			if tt.storeErr != nil {
				ts.feedback.EXPECT().StoreFeedback(gomock.Any(), gomock.Any()).Return(tt.storeErr)
			}
			w := ts.do(http.MethodPost, "/feedback", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decode[errorResponse](t, w).Error)
			}
		})
	}
}

func TestFeedback_Weights(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.feedback.EXPECT().PersonalizedWeights(gomock.Any(), "u1").Return(feedback.DefaultWeights(), nil)

	w := ts.do(http.MethodGet, "/feedback/weights/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[feedback.Weights](t, w)
	assert.Equal(t, 1.0, resp.Genres["weight"])
	assert.Equal(t, 1.0, resp.Eras["weight"])
}

func TestFeedback_WeightsError(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.feedback.EXPECT().PersonalizedWeights(gomock.Any(), "u1").Return(feedback.Weights{}, errors.New("db down"))

	w := ts.do(http.MethodGet, "/feedback/weights/u1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error retrieving weights", decode[errorResponse](t, w).Error)
}

func TestFeedback_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, err := NewWithDeps(ServerDeps{Searcher: mocks.NewMockSearcher(ctrl)}, Config{}, testLogger())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback/weights/u1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestClearCache(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.cache.EXPECT().Clear(gomock.Any()).Return(nil)

	w := ts.do(http.MethodDelete, "/cache", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestClearCache_Error(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.cache.EXPECT().Clear(gomock.Any()).Return(errors.New("redis gone"))

	w := ts.do(http.MethodDelete, "/cache", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, Config{Version: "1.2.3"})

	w := ts.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, healthResponse{Status: "ok", Version: "1.2.3"}, decode[healthResponse](t, w))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, Config{})

	w := ts.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, Config{})

	w := ts.do(http.MethodPost, "/search", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
