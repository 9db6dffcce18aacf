// Package aggregator runs the search pipeline: term extraction, catalog
// fan-out, enrichment, ratings, de-duplication and scoring.
package aggregator

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/reelsearch/internal/cache"
	"github.com/vmunix/reelsearch/internal/feedback"
	"github.com/vmunix/reelsearch/internal/metrics"
	"github.com/vmunix/reelsearch/internal/omdb"
	"github.com/vmunix/reelsearch/internal/search"
	"github.com/vmunix/reelsearch/internal/tmdb"
	"github.com/vmunix/reelsearch/pkg/title"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . TermExtractor,CandidateSearcher,DetailSource,RatingsSource,PreferenceSource

// TermExtractor turns a raw query into search terms.
type TermExtractor interface {
	Extract(ctx context.Context, raw string) []string
}

// CandidateSearcher returns a ranked page of catalog candidates.
type CandidateSearcher interface {
	Search(ctx context.Context, q search.Query) (*search.Page, error)
}

// DetailSource provides per-movie detail facets.
type DetailSource interface {
	GetMovie(ctx context.Context, id int64) (*tmdb.Movie, error)
	MovieKeywords(ctx context.Context, id int64) ([]tmdb.Keyword, error)
	WatchProviders(ctx context.Context, id int64) (map[string]tmdb.RegionProviders, error)
	MovieCredits(ctx context.Context, id int64) (*tmdb.Credits, error)
}

// RatingsSource provides third-party ratings.
type RatingsSource interface {
	SearchByTitle(ctx context.Context, title string) ([]omdb.SearchItem, error)
	LookupByID(ctx context.Context, imdbID string) (*omdb.Record, error)
}

// PreferenceSource provides a user's learned weights.
type PreferenceSource interface {
	PersonalizedWeights(ctx context.Context, userID string) (feedback.Weights, error)
}

// Deps are the collaborators of a Service. Ratings and Preferences are
// optional.
type Deps struct {
	Extractor   TermExtractor
	Engine      CandidateSearcher
	Details     DetailSource
	Ratings     RatingsSource
	Preferences PreferenceSource
	Cache       cache.Cache
}

// Config tunes enrichment and scoring.
type Config struct {
	Regions     []string
	CastLimit   int
	MaxInFlight int
	CallTimeout time.Duration
	Formula     string
}

// Request is one search request.
type Request struct {
	Query  string
	Page   int
	UserID string
}

// Response is the search envelope returned to clients.
type Response struct {
	TotalResults int      `json:"totalResults"`
	TotalPages   int      `json:"totalPages"`
	Page         int      `json:"page"`
	HasMore      bool     `json:"hasMore"`
	Search       []Result `json:"Search"`
}

// Service orchestrates a search.
type Service struct {
	deps   Deps
	cfg    Config
	scorer *Scorer
	log    *slog.Logger
}

// New creates a Service. It fails only if the scoring formula is invalid.
func New(deps Deps, cfg Config, log *slog.Logger) (*Service, error) {
	if len(cfg.Regions) == 0 {
		cfg.Regions = []string{"US"}
	}
	if cfg.CastLimit <= 0 {
		cfg.CastLimit = 10
	}
	scorer, err := NewScorer(cfg.Formula, log)
	if err != nil {
		return nil, err
	}
	return &Service{deps: deps, cfg: cfg, scorer: scorer, log: log}, nil
}

// Search runs the full pipeline for req. Provider failures degrade the
// result instead of failing it.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	raw := strings.TrimSpace(req.Query)
	if raw == "" {
		return nil, ErrEmptyQuery
	}
	start := time.Now()

	terms := s.terms(ctx, raw)
	page, err := s.deps.Engine.Search(ctx, search.Query{Raw: raw, Terms: terms, Page: req.Page})
	if err != nil {
		return nil, &InternalError{Op: "search", Err: err}
	}

	weights := s.weights(ctx, req.UserID)
	enriched := s.enrich(ctx, raw, page.Items)

	results := make([]Result, 0, len(enriched))
	seen := make(map[string]bool)
	for _, r := range enriched {
		key := title.Key(r.Title)
		if key != "" && seen[key] {
			continue
		}
		seen[key] = true
		r.RecommendationScore = s.scorer.Score(raw, &r, weights)
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RecommendationScore > results[j].RecommendationScore
	})

	metrics.SearchResultsTotal.Observe(float64(page.TotalResults))
	s.log.Info("search served", "query", raw, "page", page.Page, "results", len(results),
		"total", page.TotalResults, "duration_ms", time.Since(start).Milliseconds())

	return &Response{
		TotalResults: page.TotalResults,
		TotalPages:   page.TotalPages,
		Page:         page.Page,
		HasMore:      page.HasMore,
		Search:       results,
	}, nil
}

// terms returns the extracted terms for raw, reading through the cache.
func (s *Service) terms(ctx context.Context, raw string) []string {
	key := cache.Key("terms", title.Query(raw))
	var terms []string
	if cache.GetJSON(ctx, s.deps.Cache, key, &terms) && len(terms) > 0 {
		return terms
	}
	terms = s.deps.Extractor.Extract(ctx, raw)
	if len(terms) > 0 {
		if err := cache.PutJSON(ctx, s.deps.Cache, key, terms); err != nil {
			s.log.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return terms
}

// weights loads personalization for userID. Any failure means no
// personalization for this request.
func (s *Service) weights(ctx context.Context, userID string) *feedback.Weights {
	if userID == "" || s.deps.Preferences == nil {
		return nil
	}
	w, err := s.deps.Preferences.PersonalizedWeights(ctx, userID)
	if err != nil {
		s.log.Warn("personalized weights unavailable", "user", userID, "error", err)
		return nil
	}
	return &w
}

// enrich joins details and ratings onto each candidate, keeping page order.
func (s *Service) enrich(ctx context.Context, raw string, items []search.Candidate) []Result {
	if len(items) == 0 {
		return []Result{}
	}
	caller := search.NewCaller(s.cfg.MaxInFlight, s.cfg.CallTimeout)

	details := make([]Details, len(items))
	var hits []omdb.SearchItem

	var g errgroup.Group
	for i, c := range items {
		g.Go(func() error {
			details[i] = s.fetchDetails(ctx, caller, c.ID)
			return nil
		})
	}
	if s.deps.Ratings != nil {
		g.Go(func() error {
			hits = s.searchRatings(ctx, caller, raw)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]Result, len(items))
	for i, c := range items {
		results[i] = newResult(c, details[i])
	}
	if s.deps.Ratings == nil {
		return results
	}

	var rg errgroup.Group
	for i := range results {
		rg.Go(func() error {
			results[i].Ratings = s.joinRating(ctx, caller, &results[i], hits)
			return nil
		})
	}
	_ = rg.Wait()
	return results
}
