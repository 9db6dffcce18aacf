package search

import (
	"slices"
	"sort"
)

// Merged folds candidates by catalog id. Folding is commutative: any order
// of Add calls over the same inputs yields the same scores and term sets.
type Merged map[int64]*Candidate

// Add folds c into m. A repeat sighting adds its score and unions its
// matched terms and cast matches; empty descriptive fields are filled in.
func (m Merged) Add(c Candidate) {
	existing, ok := m[c.ID]
	if !ok {
		stored := c
		stored.MatchedTerms = union(nil, c.MatchedTerms)
		stored.CastMatches = union(nil, c.CastMatches)
		stored.GenreIDs = slices.Clone(c.GenreIDs)
		m[c.ID] = &stored
		return
	}

	existing.Score += c.Score
	existing.MatchedTerms = union(existing.MatchedTerms, c.MatchedTerms)
	existing.CastMatches = union(existing.CastMatches, c.CastMatches)

	if existing.Title == "" {
		existing.Title = c.Title
	}
	if existing.ReleaseDate == "" {
		existing.ReleaseDate = c.ReleaseDate
	}
	if existing.Overview == "" {
		existing.Overview = c.Overview
	}
	if existing.PosterPath == "" {
		existing.PosterPath = c.PosterPath
	}
	if len(existing.GenreIDs) == 0 {
		existing.GenreIDs = slices.Clone(c.GenreIDs)
	}
	existing.Popularity = max(existing.Popularity, c.Popularity)
	existing.VoteAverage = max(existing.VoteAverage, c.VoteAverage)
	existing.VoteCount = max(existing.VoteCount, c.VoteCount)
}

// AddAll folds every candidate in cs.
func (m Merged) AddAll(cs []Candidate) {
	for _, c := range cs {
		m.Add(c)
	}
}

// Candidates returns the merged candidates ordered by id.
func (m Merged) Candidates() []Candidate {
	out := make([]Candidate, 0, len(m))
	for _, c := range m {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// union returns the sorted, duplicate-free union of a and b.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}
