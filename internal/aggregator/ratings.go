package aggregator

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/reelsearch/internal/cache"
	"github.com/vmunix/reelsearch/internal/omdb"
	"github.com/vmunix/reelsearch/internal/search"
	"github.com/vmunix/reelsearch/pkg/title"
)

const providerOMDb = "omdb"

// searchRatings returns the ratings search hits for the raw query.
func (s *Service) searchRatings(ctx context.Context, caller *search.Caller, raw string) []omdb.SearchItem {
	key := cache.Key("ratings", title.Query(raw))
	var hits []omdb.SearchItem
	if cache.GetJSON(ctx, s.deps.Cache, key, &hits) {
		return hits
	}

	hits, err := search.Call(ctx, caller, providerOMDb, "search", func(ctx context.Context) ([]omdb.SearchItem, error) {
		return s.deps.Ratings.SearchByTitle(ctx, raw)
	})
	if err != nil {
		s.log.Warn("ratings search failed", "query", raw, "error", fmt.Errorf("%w: %w", ErrPartialEnrichment, err))
		return nil
	}
	if hits == nil {
		hits = []omdb.SearchItem{}
	}
	if err := cache.PutJSON(ctx, s.deps.Cache, key, hits); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
	return hits
}

// matchIMDBID finds the ratings hit for r. An exact normalized title wins;
// otherwise the closest title at or above ConfidenceHigh with the same year.
func matchIMDBID(r *Result, hits []omdb.SearchItem) string {
	key := title.Key(r.Title)
	if key == "" {
		return ""
	}
	for _, h := range hits {
		if title.Key(h.Title) == key && yearsCompatible(r.Year, h.YearInt()) {
			return h.IMDBID
		}
	}

	var titles []string
	var ids []string
	for _, h := range hits {
		if r.Year != 0 && h.YearInt() == r.Year {
			titles = append(titles, h.Title)
			ids = append(ids, h.IMDBID)
		}
	}
	if m := title.BestMatch(r.Title, titles, title.ConfidenceHigh); m.Index >= 0 {
		return ids[m.Index]
	}
	return ""
}

func yearsCompatible(a, b int) bool {
	return a == 0 || b == 0 || a == b
}

// ratingEntry is the cached outcome of one ratings lookup. A title the
// provider does not know is cached too, so repeats skip the call.
type ratingEntry struct {
	Record   omdb.Record `json:"record"`
	NotFound bool        `json:"notFound,omitempty"`
}

// joinRating attaches ratings to r. Ratings only enrich; a result without a
// match keeps a nil block.
func (s *Service) joinRating(ctx context.Context, caller *search.Caller, r *Result, hits []omdb.SearchItem) *Ratings {
	imdbID := r.IMDBID
	if imdbID == "" {
		imdbID = matchIMDBID(r, hits)
	}
	if imdbID == "" {
		return nil
	}

	key := cache.Key("rating", imdbID)
	var entry ratingEntry
	if !cache.GetJSON(ctx, s.deps.Cache, key, &entry) {
		got, err := search.Call(ctx, caller, providerOMDb, "lookup", func(ctx context.Context) (*omdb.Record, error) {
			return s.deps.Ratings.LookupByID(ctx, imdbID)
		})
		switch {
		case errors.Is(err, omdb.ErrNotFound):
			entry = ratingEntry{NotFound: true}
		case err != nil || got == nil:
			s.log.Warn("rating lookup failed", "imdb_id", imdbID, "error", fmt.Errorf("%w: %w", ErrPartialEnrichment, err))
			return nil
		default:
			entry = ratingEntry{Record: *got}
		}
		if err := cache.PutJSON(ctx, s.deps.Cache, key, entry); err != nil {
			s.log.Warn("cache write failed", "key", key, "error", err)
		}
	}
	if entry.NotFound {
		return nil
	}
	rec := entry.Record

	if r.IMDBID == "" {
		r.IMDBID = imdbID
	}
	return &Ratings{
		IMDBRating:     rec.IMDBScore(),
		IMDBVotes:      rec.Votes(),
		Metascore:      rec.Meta(),
		RottenTomatoes: rec.RatingFrom("Rotten Tomatoes"),
		Rated:          rec.Rated,
	}
}
