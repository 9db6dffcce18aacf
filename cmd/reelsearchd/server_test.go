package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/config"
	"github.com/vmunix/reelsearch/internal/feedback"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.ServerConfig{LogLevel: "info", LogFormat: "json"})
	logger.Info("search complete", "results", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "search complete", line["msg"])
	assert.EqualValues(t, 3, line["results"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.ServerConfig{LogLevel: "warn"})
	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func fakeTMDB(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/search/movie":
			_, _ = io.WriteString(w, `{"page":1,"results":[{"id":949,"title":"Heat","release_date":"1995-12-15","vote_average":7.9,"popularity":50,"vote_count":7000}]}`)
		case "/3/search/person":
			_, _ = io.WriteString(w, `{"page":1,"results":[]}`)
		case "/3/movie/949":
			_, _ = io.WriteString(w, `{"id":949,"title":"Heat","genres":[{"id":80,"name":"Crime"}]}`)
		case "/3/movie/949/keywords":
			_, _ = io.WriteString(w, `{"id":949,"keywords":[{"id":1,"name":"heist"}]}`)
		case "/3/movie/949/watch/providers":
			_, _ = io.WriteString(w, `{"id":949,"results":{}}`)
		case "/3/movie/949/credits":
			_, _ = io.WriteString(w, `{"id":949,"cast":[{"id":1158,"name":"Al Pacino"}],"crew":[]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, tmdbURL string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Path = ":memory:"
	cfg.Cache.Backend = "memory"
	cfg.TMDB.APIKey = "test-key"
	cfg.TMDB.BaseURL = tmdbURL
	cfg.TMDB.RateLimit = -1
	cfg.TMDB.Regions = []string{"US"}
	cfg.Feedback.Backend = "sqlite"
	return cfg
}

func buildTestApp(t *testing.T) http.Handler {
	t.Helper()
	cfg := testConfig(t, fakeTMDB(t).URL)
	a, err := build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { a.close(context.Background()) })
	return a.handler
}

func TestBuild_SearchEndToEnd(t *testing.T) {
	h := buildTestApp(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?query=heat", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp aggregator.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalResults)
	require.Len(t, resp.Search, 1)
	assert.Equal(t, "Heat", resp.Search[0].Title)
	assert.Equal(t, []string{"heist"}, resp.Search[0].Keywords)
}

func TestBuild_FeedbackRoundTrip(t *testing.T) {
	h := buildTestApp(t)

	body := `{"userId":"u1","rating":"positive","matchFactors":["genre:Crime"]}`
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback/weights/u1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var weights feedback.Weights
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weights))
	assert.InDelta(t, 1.1, weights.Genres["Crime"], 1e-9)
}

func TestBuild_ClearCache(t *testing.T) {
	h := buildTestApp(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cache", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestBuild_InvalidFormula(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.Scoring.Formula = "unknownVar * 2"

	_, err := build(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aggregator")
}

func TestBuildAIProvider(t *testing.T) {
	assert.Nil(t, buildAIProvider(config.AIConfig{}))

	p := buildAIProvider(config.AIConfig{
		Enabled:  true,
		Provider: "ollama",
		Ollama:   &config.OllamaConfig{URL: "http://localhost:11434", Model: "llama3.2"},
	})
	require.NotNil(t, p)
	assert.Equal(t, "ollama", p.Name())

	p = buildAIProvider(config.AIConfig{
		Enabled:   true,
		Provider:  "anthropic",
		Anthropic: &config.AnthropicConfig{APIKey: "k", Model: "m"},
	})
	require.NotNil(t, p)
	assert.Equal(t, "anthropic", p.Name())
}
