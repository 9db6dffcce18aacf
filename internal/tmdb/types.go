// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// Movie represents TMDB movie details.
type Movie struct {
	ID          int64   `json:"id"`
	IMDBID      string  `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"` // "2024-03-01"
	PosterPath  string  `json:"poster_path"`  // "/abc123.jpg"
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Runtime     int     `json:"runtime"` // minutes
	Genres      []Genre `json:"genres"`
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return Year(m.ReleaseDate)
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (m *Movie) PosterURL(size string) string {
	return PosterURL(m.PosterPath, size)
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieResult is a movie as returned by search and credit endpoints.
type MovieResult struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
	MediaType        string  `json:"media_type,omitempty"` // set on known_for entries
}

// Person is a person search result.
type Person struct {
	ID                 int64         `json:"id"`
	Name               string        `json:"name"`
	KnownForDepartment string        `json:"known_for_department"`
	Popularity         float64       `json:"popularity"`
	KnownFor           []MovieResult `json:"known_for"`
}

// Credit is one movie on a person's filmography.
type Credit struct {
	MovieResult
	Character string `json:"character,omitempty"`
	Job       string `json:"job,omitempty"`
}

// PersonCredits is a person's movie filmography.
type PersonCredits struct {
	ID   int64    `json:"id"`
	Cast []Credit `json:"cast"`
	Crew []Credit `json:"crew"`
}

// Keyword is a TMDB keyword tag.
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WatchProvider is a streaming, rental or purchase service.
type WatchProvider struct {
	ID       int    `json:"provider_id"`
	Name     string `json:"provider_name"`
	LogoPath string `json:"logo_path"`
}

// RegionProviders lists availability in one country.
type RegionProviders struct {
	Link     string          `json:"link"`
	Flatrate []WatchProvider `json:"flatrate"`
	Rent     []WatchProvider `json:"rent"`
	Buy      []WatchProvider `json:"buy"`
	Free     []WatchProvider `json:"free"`
}

// CastMember is a billed actor.
type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a crew credit.
type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits is a movie's cast and crew.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Directors returns the names of crew members credited as director.
func (c *Credits) Directors() []string {
	var names []string
	for _, m := range c.Crew {
		if m.Job == "Director" {
			names = append(names, m.Name)
		}
	}
	return names
}

type pagedMovies struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalResults int           `json:"total_results"`
	TotalPages   int           `json:"total_pages"`
}

type pagedPeople struct {
	Page    int      `json:"page"`
	Results []Person `json:"results"`
}

type keywordsResponse struct {
	ID       int64     `json:"id"`
	Keywords []Keyword `json:"keywords"`
}

type watchProvidersResponse struct {
	ID      int64                      `json:"id"`
	Results map[string]RegionProviders `json:"results"`
}

// Year extracts the year from a TMDB date ("2024-03-01").
func Year(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// PosterURL returns the full image URL for a poster path.
func PosterURL(path, size string) string {
	if path == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/" + size + path
}
