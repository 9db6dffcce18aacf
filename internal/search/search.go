// Package search fans a query out to the movie catalog, merges what comes
// back and ranks the result.
package search

import (
	"context"
	"time"

	"github.com/vmunix/reelsearch/internal/tmdb"
)

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks . Catalog

// Catalog is the subset of the TMDB client the engine needs.
type Catalog interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.MovieResult, error)
	SearchPeople(ctx context.Context, query string) ([]tmdb.Person, error)
	PersonCredits(ctx context.Context, personID int64) (*tmdb.PersonCredits, error)
}

const (
	// TitleWeight is the relevance a title hit contributes.
	TitleWeight = 1
	// DefaultPersonWeight is the relevance a person credit contributes.
	DefaultPersonWeight = 3
	// DefaultMaxPersons caps how many people are resolved per term.
	DefaultMaxPersons = 3
	// DefaultMaxInFlight bounds outbound calls per request.
	DefaultMaxInFlight = 8
	// DefaultCallTimeout bounds each outbound call.
	DefaultCallTimeout = 8 * time.Second
	// PageSize is the number of candidates per page.
	PageSize = 10
)

// Candidate is a movie surfaced by at least one term and source.
type Candidate struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	ReleaseDate  string   `json:"releaseDate"`
	Overview     string   `json:"overview"`
	PosterPath   string   `json:"posterPath"`
	Popularity   float64  `json:"popularity"`
	VoteAverage  float64  `json:"voteAverage"`
	VoteCount    int      `json:"voteCount"`
	GenreIDs     []int    `json:"genreIds"`
	Score        int      `json:"score"`
	MatchedTerms []string `json:"matchedTerms"`
	CastMatches  []string `json:"castMatches"`
}

// Year returns the release year, or 0 when unknown.
func (c *Candidate) Year() int {
	return tmdb.Year(c.ReleaseDate)
}

func candidateFrom(m tmdb.MovieResult) Candidate {
	return Candidate{
		ID:           m.ID,
		Title:        m.Title,
		ReleaseDate:  m.ReleaseDate,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		Popularity:   m.Popularity,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		GenreIDs:     m.GenreIDs,
		MatchedTerms: []string{},
		CastMatches:  []string{},
	}
}

// Query is one engine request.
type Query struct {
	Raw   string   // query as the user typed it
	Terms []string // extracted terms, full query first
	Page  int      // 1-based
}

// Page is a window over the ranked candidates.
type Page struct {
	Items        []Candidate
	TotalResults int
	TotalPages   int
	Page         int
	HasMore      bool
}

// Config tunes fan-out and scoring.
type Config struct {
	MaxInFlight  int
	CallTimeout  time.Duration
	PersonWeight int
	MaxPersons   int
}

func (c Config) withDefaults() Config {
	if c.MaxInFlight <= 0 {
		c.MaxInFlight = DefaultMaxInFlight
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = DefaultCallTimeout
	}
	if c.PersonWeight <= 0 {
		c.PersonWeight = DefaultPersonWeight
	}
	if c.MaxPersons <= 0 {
		c.MaxPersons = DefaultMaxPersons
	}
	return c
}
