package v1

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/reelsearch/internal/aggregator"
)

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, Config{RateLimitRPS: 0.001, RateLimitBurst: 2})
	ts.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(&aggregator.Response{Page: 1, Search: []aggregator.Result{}}, nil).Times(2)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/search?query=a", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/search?query=b", "").Code)

	w := ts.do(http.MethodGet, "/search?query=c", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	// exempt
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/health", "").Code)
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	ts := newTestServer(t, Config{})
	ts.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(&aggregator.Response{Page: 1, Search: []aggregator.Result{}}, nil).Times(20)

	for range 20 {
		assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/search?query=a", "").Code)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, Config{CORSOrigins: []string{"https://app.example.com"}})

	t.Run("preflight allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/search", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "GET")
		w := httptest.NewRecorder()
		ts.handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		ts.handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORS_Wildcard(t *testing.T) {
	h := corsMiddleware([]string{"*"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/search", routeLabel("GET /search"))
	assert.Equal(t, "/feedback/weights/{userId}", routeLabel("GET /feedback/weights/{userId}"))
	assert.Equal(t, "/other", routeLabel(""))
}

func TestRequestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, requestLogLevel("/search", 500))
	assert.Equal(t, slog.LevelWarn, requestLogLevel("/search", 429))
	assert.Equal(t, slog.LevelDebug, requestLogLevel("/health", 200))
	assert.Equal(t, slog.LevelInfo, requestLogLevel("/search", 200))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.2")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
