package search

import (
	"sort"
	"strings"
	"time"

	"github.com/vmunix/reelsearch/pkg/title"
)

// relevance is Score scaled by popularity. Non-positive popularity counts as 1.
func relevance(c *Candidate) float64 {
	pop := c.Popularity
	if pop <= 0 {
		pop = 1
	}
	return float64(c.Score) * pop
}

// WantsLatest reports whether the query asks for newest-first ordering.
func WantsLatest(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "latest")
}

func releaseTime(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Rank orders cs in place. By default candidates sort by descending
// relevance with ties broken by ascending id. When the raw query contains
// "latest" they sort by descending release date, undated last.
func Rank(cs []Candidate, raw string) {
	if WantsLatest(raw) {
		sort.SliceStable(cs, func(i, j int) bool {
			ti, okI := releaseTime(cs[i].ReleaseDate)
			tj, okJ := releaseTime(cs[j].ReleaseDate)
			if okI != okJ {
				return okI
			}
			if okI && !ti.Equal(tj) {
				return ti.After(tj)
			}
			return byRelevance(&cs[i], &cs[j])
		})
		return
	}
	sort.SliceStable(cs, func(i, j int) bool {
		return byRelevance(&cs[i], &cs[j])
	})
}

func byRelevance(a, b *Candidate) bool {
	ra, rb := relevance(a), relevance(b)
	if ra != rb {
		return ra > rb
	}
	return a.ID < b.ID
}

// Dedupe keeps the first candidate for each title key, so a ranked list
// holds one entry per title. Candidates without a usable title are kept.
func Dedupe(ranked []Candidate) []Candidate {
	seen := make(map[string]bool, len(ranked))
	out := ranked[:0]
	for _, c := range ranked {
		key := title.Key(c.Title)
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, c)
	}
	return out
}

// Paginate returns the 1-based page of ranked. A page below 1 is treated
// as 1; a page past the end is empty.
func Paginate(ranked []Candidate, page int) *Page {
	if page < 1 {
		page = 1
	}
	total := len(ranked)
	totalPages := (total + PageSize - 1) / PageSize

	items := []Candidate{}
	if page <= totalPages {
		start := (page - 1) * PageSize
		end := min(start+PageSize, total)
		items = append(items, ranked[start:end]...)
	}

	return &Page{
		Items:        items,
		TotalResults: total,
		TotalPages:   totalPages,
		Page:         page,
		HasMore:      page < totalPages,
	}
}
