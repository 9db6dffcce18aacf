package aggregator

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/reelsearch/internal/cache"
	"github.com/vmunix/reelsearch/internal/search"
	"github.com/vmunix/reelsearch/internal/tmdb"
)

const providerTMDB = "tmdb"

// fetchDetails loads every detail facet for id concurrently. A failed facet
// is left empty; the fragment is cached only when every facet succeeded.
func (s *Service) fetchDetails(ctx context.Context, caller *search.Caller, id int64) Details {
	key := cache.Key("details", strconv.FormatInt(id, 10))
	var d Details
	if cache.GetJSON(ctx, s.deps.Cache, key, &d) {
		return d
	}

	d = emptyDetails()
	var (
		movie     *tmdb.Movie
		keywords  []tmdb.Keyword
		providers map[string]tmdb.RegionProviders
		credits   *tmdb.Credits
	)
	errs := make([]error, 4)

	var g errgroup.Group
	g.Go(func() error {
		movie, errs[0] = search.Call(ctx, caller, providerTMDB, "movie_details", func(ctx context.Context) (*tmdb.Movie, error) {
			return s.deps.Details.GetMovie(ctx, id)
		})
		return nil
	})
	g.Go(func() error {
		keywords, errs[1] = search.Call(ctx, caller, providerTMDB, "movie_keywords", func(ctx context.Context) ([]tmdb.Keyword, error) {
			return s.deps.Details.MovieKeywords(ctx, id)
		})
		return nil
	})
	g.Go(func() error {
		providers, errs[2] = search.Call(ctx, caller, providerTMDB, "watch_providers", func(ctx context.Context) (map[string]tmdb.RegionProviders, error) {
			return s.deps.Details.WatchProviders(ctx, id)
		})
		return nil
	})
	g.Go(func() error {
		credits, errs[3] = search.Call(ctx, caller, providerTMDB, "movie_credits", func(ctx context.Context) (*tmdb.Credits, error) {
			return s.deps.Details.MovieCredits(ctx, id)
		})
		return nil
	})
	_ = g.Wait()

	complete := true
	for i, facet := range []string{"details", "keywords", "providers", "credits"} {
		if errs[i] != nil {
			complete = false
			s.log.Warn("enrichment failed", "id", id, "facet", facet,
				"error", fmt.Errorf("%w: %w", ErrPartialEnrichment, errs[i]))
		}
	}

	if movie != nil {
		d.Runtime = movie.Runtime
		d.IMDBID = movie.IMDBID
		for _, genre := range movie.Genres {
			d.Genres = append(d.Genres, genre.Name)
		}
	}
	for _, k := range keywords {
		d.Keywords = append(d.Keywords, k.Name)
	}
	for _, region := range s.cfg.Regions {
		if rp, ok := providers[region]; ok {
			d.Providers[region] = availability(rp)
		}
	}
	if credits != nil {
		for i, m := range credits.Cast {
			if i >= s.cfg.CastLimit {
				break
			}
			d.Cast = append(d.Cast, m.Name)
		}
		d.Directors = append(d.Directors, credits.Directors()...)
	}

	if complete {
		if err := cache.PutJSON(ctx, s.deps.Cache, key, d); err != nil {
			s.log.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return d
}

func availability(rp tmdb.RegionProviders) Availability {
	names := func(ps []tmdb.WatchProvider) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}
	return Availability{
		Link:   rp.Link,
		Stream: append(names(rp.Flatrate), names(rp.Free)...),
		Rent:   names(rp.Rent),
		Buy:    names(rp.Buy),
	}
}
