package aggregator

import (
	"github.com/vmunix/reelsearch/internal/search"
	"github.com/vmunix/reelsearch/internal/tmdb"
)

// posterSize is the TMDB image size used for result posters.
const posterSize = "w500"

// Availability lists the services offering a movie in one region.
type Availability struct {
	Link   string   `json:"link"`
	Stream []string `json:"stream"`
	Rent   []string `json:"rent"`
	Buy    []string `json:"buy"`
}

// Details are the detail facets fetched for one movie.
type Details struct {
	Runtime   int                     `json:"runtime"`
	IMDBID    string                  `json:"imdbId"`
	Genres    []string                `json:"genres"`
	Keywords  []string                `json:"keywords"`
	Providers map[string]Availability `json:"providers"`
	Cast      []string                `json:"cast"`
	Directors []string                `json:"directors"`
}

func emptyDetails() Details {
	return Details{
		Genres:    []string{},
		Keywords:  []string{},
		Providers: map[string]Availability{},
		Cast:      []string{},
		Directors: []string{},
	}
}

// Ratings are third-party scores for a movie.
type Ratings struct {
	IMDBRating     float64 `json:"imdbRating"`
	IMDBVotes      int     `json:"imdbVotes"`
	Metascore      int     `json:"metascore"`
	RottenTomatoes string  `json:"rottenTomatoes,omitempty"`
	Rated          string  `json:"rated,omitempty"`
}

// Result is one enriched, scored search result.
type Result struct {
	ID                  int64                   `json:"id"`
	Title               string                  `json:"title"`
	Year                int                     `json:"year,omitempty"`
	ReleaseDate         string                  `json:"releaseDate"`
	Overview            string                  `json:"overview"`
	Poster              string                  `json:"poster"`
	Popularity          float64                 `json:"popularity"`
	VoteAverage         float64                 `json:"voteAverage"`
	VoteCount           int                     `json:"voteCount"`
	Runtime             int                     `json:"runtime,omitempty"`
	IMDBID              string                  `json:"imdbID,omitempty"`
	Genres              []string                `json:"genres"`
	Keywords            []string                `json:"keywords"`
	Providers           map[string]Availability `json:"providers"`
	Cast                []string                `json:"cast"`
	Directors           []string                `json:"directors"`
	Score               int                     `json:"score"`
	MatchedTerms        []string                `json:"matchedTerms"`
	CastMatches         []string                `json:"castMatches"`
	Ratings             *Ratings                `json:"ratings,omitempty"`
	RecommendationScore int                     `json:"recommendationScore"`
}

func newResult(c search.Candidate, d Details) Result {
	r := Result{
		ID:           c.ID,
		Title:        c.Title,
		Year:         c.Year(),
		ReleaseDate:  c.ReleaseDate,
		Overview:     c.Overview,
		Poster:       tmdb.PosterURL(c.PosterPath, posterSize),
		Popularity:   c.Popularity,
		VoteAverage:  c.VoteAverage,
		VoteCount:    c.VoteCount,
		Runtime:      d.Runtime,
		IMDBID:       d.IMDBID,
		Genres:       nonNil(d.Genres),
		Keywords:     nonNil(d.Keywords),
		Providers:    d.Providers,
		Cast:         nonNil(d.Cast),
		Directors:    nonNil(d.Directors),
		Score:        c.Score,
		MatchedTerms: nonNil(c.MatchedTerms),
		CastMatches:  nonNil(c.CastMatches),
	}
	if r.Providers == nil {
		r.Providers = map[string]Availability{}
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
