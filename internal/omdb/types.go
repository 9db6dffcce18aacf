// Package omdb provides a client for the OMDb ratings API.
package omdb

import (
	"strconv"
	"strings"
)

// SearchItem is one hit from a title search.
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// YearInt parses Year, which may be a range like "2008–2012".
func (s SearchItem) YearInt() int {
	return parseInt(firstYear(s.Year))
}

// Rating is a third-party score reported by OMDb.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Record is the full lookup result for one title.
type Record struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Awards     string   `json:"Awards"`
	Poster     string   `json:"Poster"`
	Ratings    []Rating `json:"Ratings"`
	Metascore  string   `json:"Metascore"`
	IMDBRating string   `json:"imdbRating"`
	IMDBVotes  string   `json:"imdbVotes"`
	IMDBID     string   `json:"imdbID"`
	Type       string   `json:"Type"`
}

// IMDBScore returns imdbRating as a number, 0 when unavailable.
func (r *Record) IMDBScore() float64 {
	f, err := strconv.ParseFloat(r.IMDBRating, 64)
	if err != nil {
		return 0
	}
	return f
}

// Votes returns imdbVotes as a number ("1,234,567" -> 1234567).
func (r *Record) Votes() int {
	return parseInt(strings.ReplaceAll(r.IMDBVotes, ",", ""))
}

// Meta returns the Metascore, 0 when unavailable.
func (r *Record) Meta() int {
	return parseInt(r.Metascore)
}

// RatingFrom returns the value reported by source, e.g. "Rotten Tomatoes".
func (r *Record) RatingFrom(source string) string {
	for _, rt := range r.Ratings {
		if strings.EqualFold(rt.Source, source) {
			return rt.Value
		}
	}
	return ""
}

// YearInt parses Year.
func (r *Record) YearInt() int {
	return parseInt(firstYear(r.Year))
}

type searchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func firstYear(s string) string {
	if len(s) >= 4 {
		return s[:4]
	}
	return s
}

// parseInt treats OMDb's "N/A" and other junk as 0.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
