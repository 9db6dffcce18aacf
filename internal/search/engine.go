package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vmunix/reelsearch/internal/cache"
	"github.com/vmunix/reelsearch/internal/tmdb"
	"github.com/vmunix/reelsearch/pkg/title"
)

const providerTMDB = "tmdb"

// Engine merges per-term title and person searches into one ranked list.
type Engine struct {
	catalog Catalog
	cache   cache.Cache
	cfg     Config
	flight  singleflight.Group
	log     *slog.Logger
}

// NewEngine creates an engine over catalog, caching ranked lists in c.
func NewEngine(catalog Catalog, c cache.Cache, cfg Config, log *slog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		cache:   c,
		cfg:     cfg.withDefaults(),
		log:     log,
	}
}

// ranked is the outcome of one fan-out.
type ranked struct {
	items    []Candidate
	degraded bool
}

// Search returns the requested page of candidates for q. Provider failures
// never surface as errors; a fully failed fan-out yields an empty page.
func (e *Engine) Search(ctx context.Context, q Query) (*Page, error) {
	key := cache.Key("search", title.Query(q.Raw))

	var items []Candidate
	if cache.GetJSON(ctx, e.cache, key, &items) {
		e.log.Debug("search cache hit", "query", q.Raw, "results", len(items))
		return Paginate(items, q.Page), nil
	}

	// The fan-out is shared by every caller waiting on key, so one caller
	// going away must not cancel it for the rest. Call timeouts still bound it.
	shared := context.WithoutCancel(ctx)
	ch := e.flight.DoChan(key, func() (any, error) {
		r, err := e.collect(shared, q)
		if err != nil {
			return nil, err
		}
		if !r.degraded {
			if err := cache.PutJSON(shared, e.cache, key, r.items); err != nil {
				e.log.Warn("cache write failed", "key", key, "error", err)
			}
		}
		return r.items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			e.log.Debug("search shared in-flight result", "query", q.Raw)
		}
		return Paginate(res.Val.([]Candidate), q.Page), nil
	}
}

// collect fans out every term to both sources and folds the results.
func (e *Engine) collect(ctx context.Context, q Query) (ranked, error) {
	terms := q.Terms
	if len(terms) == 0 {
		terms = []string{title.Query(q.Raw)}
	}

	e.log.Debug("search started", "query", q.Raw, "terms", len(terms))
	start := time.Now()

	caller := NewCaller(e.cfg.MaxInFlight, e.cfg.CallTimeout)
	slots := make([][]Candidate, 2*len(terms))
	errs := make([]error, 2*len(terms))

	var g errgroup.Group
	for i, term := range terms {
		g.Go(func() error {
			slots[2*i], errs[2*i] = e.searchTitles(ctx, caller, term)
			return nil
		})
		g.Go(func() error {
			slots[2*i+1], errs[2*i+1] = e.searchPersons(ctx, caller, term)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return ranked{}, err
	}

	merged := make(Merged)
	failures := 0
	for i, slot := range slots {
		if errs[i] != nil {
			failures++
			e.log.Warn("provider call failed", "term", terms[i/2], "error", errs[i])
		}
		merged.AddAll(slot)
	}

	items := merged.Candidates()
	if failures == len(slots) && len(items) == 0 {
		e.log.Error("all providers failed", "query", q.Raw, "calls", failures)
		return ranked{items: []Candidate{}, degraded: true}, nil
	}

	Rank(items, q.Raw)
	items = Dedupe(items)
	e.log.Info("search complete", "query", q.Raw, "terms", len(terms), "results", len(items),
		"failures", failures, "duration_ms", time.Since(start).Milliseconds())
	return ranked{items: items, degraded: failures > 0}, nil
}

// searchTitles turns title hits for term into candidates.
func (e *Engine) searchTitles(ctx context.Context, caller *Caller, term string) ([]Candidate, error) {
	results, err := Call(ctx, caller, providerTMDB, "search_movies", func(ctx context.Context) ([]tmdb.MovieResult, error) {
		return e.catalog.SearchMovies(ctx, term)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: search movies %q: %w", ErrUpstreamUnavailable, term, err)
	}

	out := make([]Candidate, 0, len(results))
	for _, m := range results {
		c := candidateFrom(m)
		c.Score = TitleWeight
		c.MatchedTerms = []string{term}
		out = append(out, c)
	}
	return out, nil
}

// searchPersons resolves the top people for term and turns each one's
// filmography into candidates. A failed credits lookup drops that person
// only.
func (e *Engine) searchPersons(ctx context.Context, caller *Caller, term string) ([]Candidate, error) {
	people, err := Call(ctx, caller, providerTMDB, "search_people", func(ctx context.Context) ([]tmdb.Person, error) {
		return e.catalog.SearchPeople(ctx, term)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: search people %q: %w", ErrUpstreamUnavailable, term, err)
	}
	if len(people) > e.cfg.MaxPersons {
		people = people[:e.cfg.MaxPersons]
	}

	perPerson := make([][]Candidate, len(people))
	creditErrs := make([]error, len(people))

	var g errgroup.Group
	for i, p := range people {
		g.Go(func() error {
			credits, err := Call(ctx, caller, providerTMDB, "person_credits", func(ctx context.Context) (*tmdb.PersonCredits, error) {
				return e.catalog.PersonCredits(ctx, p.ID)
			})
			if err != nil {
				creditErrs[i] = fmt.Errorf("%w: credits for %s: %w", ErrUpstreamUnavailable, p.Name, err)
				return nil
			}
			perPerson[i] = e.personCandidates(term, p, credits)
			return nil
		})
	}
	_ = g.Wait()

	var out []Candidate
	for _, cs := range perPerson {
		out = append(out, cs...)
	}
	return out, errors.Join(creditErrs...)
}

// personCandidates collapses a person's cast and crew credits to one
// candidate per movie.
func (e *Engine) personCandidates(term string, p tmdb.Person, credits *tmdb.PersonCredits) []Candidate {
	if credits == nil {
		return nil
	}
	seen := make(map[int64]bool)
	var out []Candidate

	add := func(cr tmdb.Credit) {
		if seen[cr.ID] {
			return
		}
		seen[cr.ID] = true
		c := candidateFrom(cr.MovieResult)
		c.Score = e.cfg.PersonWeight
		c.MatchedTerms = []string{fmt.Sprintf("%s (as %s)", term, p.Name)}
		c.CastMatches = []string{p.Name}
		out = append(out, c)
	}
	for _, cr := range credits.Cast {
		add(cr)
	}
	for _, cr := range credits.Crew {
		add(cr)
	}
	return out
}
