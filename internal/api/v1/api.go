// Package v1 implements the HTTP API.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config holds API server configuration.
type Config struct {
	Version        string
	ServiceName    string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// NewWithDeps creates a server, validating its dependencies.
func NewWithDeps(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "reelsearch"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Search
	mux.HandleFunc("GET /search", s.search)
	mux.HandleFunc("GET /api/search", s.search)

	// Feedback
	mux.HandleFunc("POST /feedback", s.requireFeedback(s.storeFeedback))
	mux.HandleFunc("GET /feedback/weights/{userId}", s.requireFeedback(s.getWeights))

	// System
	mux.HandleFunc("DELETE /cache", s.requireCache(s.clearCache))
	mux.HandleFunc("GET /health", s.health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// Handler returns the routed API wrapped in its middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	var h http.Handler = mux
	h = corsMiddleware(s.cfg.CORSOrigins, h)
	h = rateLimitMiddleware(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst, h)
	h = metricsMiddleware(h)
	h = loggingMiddleware(s.log, h)
	h = recoveryMiddleware(s.log, h)
	return otelhttp.NewHandler(h, s.cfg.ServiceName,
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/health"
		}),
	)
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.cfg.Version})
}

func (s *Server) clearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Cache.Clear(r.Context()); err != nil {
		s.log.Error("cache clear failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "Error clearing cache", Message: err.Error(), Code: "CACHE_ERROR",
		})
		return
	}
	s.log.Info("cache cleared")
	w.WriteHeader(http.StatusNoContent)
}
