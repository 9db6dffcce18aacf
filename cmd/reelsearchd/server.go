package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	_ "modernc.org/sqlite"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/ai"
	v1 "github.com/vmunix/reelsearch/internal/api/v1"
	"github.com/vmunix/reelsearch/internal/cache"
	"github.com/vmunix/reelsearch/internal/config"
	"github.com/vmunix/reelsearch/internal/extract"
	"github.com/vmunix/reelsearch/internal/feedback"
	"github.com/vmunix/reelsearch/internal/metrics"
	"github.com/vmunix/reelsearch/internal/migrations"
	"github.com/vmunix/reelsearch/internal/omdb"
	"github.com/vmunix/reelsearch/internal/search"
	"github.com/vmunix/reelsearch/internal/server"
	"github.com/vmunix/reelsearch/internal/telemetry"
	"github.com/vmunix/reelsearch/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, cfg config.ServerConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func runServer(configPath string) error {
	if configPath == "" {
		p, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(os.Stdout, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	metrics.Register(prometheus.DefaultRegisterer)

	a, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"version", version,
		"database", cfg.Database.Path,
		"cache", cfg.Cache.Backend,
		"feedback", cfg.Feedback.Backend,
		"ratings", cfg.OMDb.APIKey != "",
		"ai", cfg.AI.Enabled,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(server.Config{Addr: addr}, a.handler, logger.With("component", "server"))
	for _, fn := range a.closers {
		runner.OnShutdown(fn)
	}
	runner.OnShutdown(shutdownTracing)

	return runner.Run(ctx)
}

// app is the wired service graph.
type app struct {
	handler http.Handler
	closers []func(context.Context) error
}

func (a *app) close(ctx context.Context) {
	for _, fn := range a.closers {
		_ = fn(ctx)
	}
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{}
	built := false
	defer func() {
		if !built {
			a.close(context.WithoutCancel(ctx))
		}
	}()

	db, err := openDatabase(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return db.Close() })

	resultCache, err := buildCache(ctx, cfg.Cache, db)
	if err != nil {
		return nil, err
	}
	if closer, ok := resultCache.(interface{ Close() error }); ok {
		a.closers = append(a.closers, func(context.Context) error { return closer.Close() })
	}

	hc := telemetry.HTTPClient(cfg.TMDB.Timeout)
	tmdbOpts := []tmdb.Option{
		tmdb.WithHTTPClient(hc),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithRateLimit(cfg.TMDB.RateLimit),
		tmdb.WithLogger(logger),
	}
	if cfg.TMDB.BaseURL != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, tmdbOpts...)

	var ratings aggregator.RatingsSource
	if cfg.OMDb.APIKey != "" {
		omdbOpts := []omdb.Option{
			omdb.WithHTTPClient(telemetry.HTTPClient(cfg.OMDb.Timeout)),
			omdb.WithRateLimit(cfg.OMDb.RateLimit),
			omdb.WithLogger(logger),
		}
		if cfg.OMDb.BaseURL != "" {
			omdbOpts = append(omdbOpts, omdb.WithBaseURL(cfg.OMDb.BaseURL))
		}
		ratings = omdb.NewClient(cfg.OMDb.APIKey, omdbOpts...)
	}

	extractor := extract.New(buildAIProvider(cfg.AI), cfg.AI.Timeout, logger.With("component", "extract"))

	store, storeClose, err := buildFeedbackStore(ctx, cfg.Feedback, db)
	if err != nil {
		return nil, err
	}
	if storeClose != nil {
		a.closers = append(a.closers, storeClose)
	}
	feedbackSvc := feedback.NewService(store, logger.With("component", "feedback"))

	engine := search.NewEngine(tmdbClient, resultCache, search.Config{
		MaxInFlight:  cfg.Search.MaxInFlight,
		CallTimeout:  cfg.Search.CallTimeout,
		PersonWeight: cfg.Search.PersonWeight,
		MaxPersons:   cfg.Search.MaxPersons,
	}, logger.With("component", "search"))

	deps := aggregator.Deps{
		Extractor:   extractor,
		Engine:      engine,
		Details:     tmdbClient,
		Ratings:     ratings,
		Preferences: feedbackSvc,
		Cache:       resultCache,
	}
	agg, err := aggregator.New(deps, aggregator.Config{
		Regions:     cfg.TMDB.Regions,
		MaxInFlight: cfg.Search.MaxInFlight,
		CallTimeout: cfg.Search.CallTimeout,
		Formula:     cfg.Scoring.Formula,
	}, logger.With("component", "aggregator"))
	if err != nil {
		return nil, fmt.Errorf("aggregator: %w", err)
	}

	api, err := v1.NewWithDeps(v1.ServerDeps{
		Searcher: agg,
		Feedback: feedbackSvc,
		Cache:    resultCache,
	}, v1.Config{
		Version:        version,
		ServiceName:    cfg.Telemetry.ServiceName,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}, logger.With("component", "api"))
	if err != nil {
		return nil, err
	}
	a.handler = api.Handler()
	built = true
	return a, nil
}

func openDatabase(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func buildCache(ctx context.Context, cfg config.CacheConfig, db *sql.DB) (cache.Cache, error) {
	switch cfg.Backend {
	case "redis":
		client, err := cache.ConnectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		return &closingRedis{Redis: cache.NewRedis(client, cfg.TTL), close: client.Close}, nil
	case "sqlite":
		return cache.NewSQLite(db, cfg.TTL), nil
	default:
		return cache.NewMemory(cfg.TTL), nil
	}
}

// closingRedis ties the client lifetime to the cache.
type closingRedis struct {
	*cache.Redis
	close func() error
}

func (c *closingRedis) Close() error { return c.close() }

func buildFeedbackStore(ctx context.Context, cfg config.FeedbackConfig, db *sql.DB) (feedback.Store, func(context.Context) error, error) {
	if cfg.Backend != "mongo" {
		return feedback.NewSQLiteStore(db), nil, nil
	}

	client, err := feedback.ConnectMongo(ctx, cfg.Mongo.URI, options.Client().SetMonitor(otelmongo.NewMonitor()))
	if err != nil {
		return nil, nil, fmt.Errorf("feedback: %w", err)
	}
	dbName := cfg.Mongo.Database
	if dbName == "" {
		dbName = "reelsearch"
	}
	store := feedback.NewMongoStore(client, dbName)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("feedback indexes: %w", err)
	}
	return store, client.Disconnect, nil
}

func buildAIProvider(cfg config.AIConfig) ai.Provider {
	if !cfg.Enabled {
		return nil
	}
	hc := ai.WithHTTPClient(telemetry.HTTPClient(cfg.Timeout))
	switch cfg.Provider {
	case "anthropic":
		return ai.NewAnthropicProvider(cfg.Anthropic.APIKey, cfg.Anthropic.Model, hc)
	case "ollama":
		return ai.NewOllamaProvider(cfg.Ollama.URL, cfg.Ollama.Model, hc)
	default:
		return nil
	}
}
