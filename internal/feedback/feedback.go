// Package feedback records user feedback on search results and derives
// per-user preference weights from it.
package feedback

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks . Store

// Weight bounds and adjustments.
const (
	DefaultWeight = 1.0
	MinWeight     = 0.1
	MaxWeight     = 2.0
	PositiveStep  = 0.1
	NegativeStep  = -0.05
)

// Preference categories, as stored.
const (
	CategoryGenres    = "genres"
	CategoryActors    = "actors"
	CategoryDirectors = "directors"
	CategoryKeywords  = "keywords"
	CategoryEras      = "eras"
)

// Categories lists every preference category in a stable order.
var Categories = []string{CategoryGenres, CategoryActors, CategoryDirectors, CategoryKeywords, CategoryEras}

// ResultRef identifies one search result the feedback refers to.
type ResultRef struct {
	MovieID  string `json:"movieId" bson:"movieId"`
	Title    string `json:"title" bson:"title"`
	Position int    `json:"position" bson:"position"`
	Clicked  bool   `json:"clicked" bson:"clicked"`
}

// Record is one piece of submitted feedback.
type Record struct {
	ID            string      `json:"id" bson:"_id"`
	UserID        string      `json:"userId" bson:"userId"`
	SearchContext string      `json:"searchContext" bson:"searchContext"`
	MatchFactors  []string    `json:"matchFactors" bson:"matchFactors"`
	Rating        string      `json:"rating" bson:"rating"`
	Note          string      `json:"note,omitempty" bson:"note,omitempty"`
	Timestamp     time.Time   `json:"timestamp" bson:"timestamp"`
	SearchResults []ResultRef `json:"searchResults" bson:"searchResults"`
	AICreditsUsed int         `json:"aiCreditsUsed" bson:"aiCreditsUsed"`
}

// Weights maps each category to value -> weight.
type Weights struct {
	Genres    map[string]float64 `json:"genres"`
	Actors    map[string]float64 `json:"actors"`
	Directors map[string]float64 `json:"directors"`
	Keywords  map[string]float64 `json:"keywords"`
	Eras      map[string]float64 `json:"eras"`
}

// NewWeights returns Weights with every category map allocated.
func NewWeights() Weights {
	return Weights{
		Genres:    map[string]float64{},
		Actors:    map[string]float64{},
		Directors: map[string]float64{},
		Keywords:  map[string]float64{},
		Eras:      map[string]float64{},
	}
}

// DefaultWeights is returned for users without any feedback.
func DefaultWeights() Weights {
	w := NewWeights()
	for _, c := range Categories {
		w.Category(c)["weight"] = DefaultWeight
	}
	return w
}

// Category returns the map for a category name, or nil if unknown.
func (w *Weights) Category(name string) map[string]float64 {
	switch name {
	case CategoryGenres:
		return w.Genres
	case CategoryActors:
		return w.Actors
	case CategoryDirectors:
		return w.Directors
	case CategoryKeywords:
		return w.Keywords
	case CategoryEras:
		return w.Eras
	}
	return nil
}

// Lookup returns the weight for value in category, matched
// case-insensitively. An exact key wins; otherwise the first matching key
// in sorted order. ok is false when no weight is recorded.
func (w *Weights) Lookup(category, value string) (weight float64, ok bool) {
	m := w.Category(category)
	if v, found := m[value]; found {
		return v, true
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if strings.EqualFold(k, value) {
			return m[k], true
		}
	}
	return 0, false
}

// Pattern is a user's learned preferences.
type Pattern struct {
	UserID      string    `json:"userId"`
	Preferences Weights   `json:"preferences"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Store persists feedback and patterns.
type Store interface {
	InsertFeedback(ctx context.Context, rec *Record) error
	// GetPattern returns ErrNotFound when the user has no pattern.
	GetPattern(ctx context.Context, userID string) (*Pattern, error)
	SavePattern(ctx context.Context, p *Pattern) error
}

var factorPrefixes = []struct {
	prefix   string
	category string
}{
	{"genre:", CategoryGenres},
	{"actor:", CategoryActors},
	{"director:", CategoryDirectors},
	{"keyword:", CategoryKeywords},
	{"era:", CategoryEras},
}

// ParseMatchFactor splits "category:value" into a stored category and
// value. The category prefix is case-insensitive and may be plural.
// ok is false for anything else.
func ParseMatchFactor(factor string) (category, value string, ok bool) {
	f := strings.TrimSpace(factor)
	lower := strings.ToLower(f)
	for _, p := range factorPrefixes {
		plural := strings.TrimSuffix(p.prefix, ":") + "s:"
		n := 0
		switch {
		case strings.HasPrefix(lower, p.prefix):
			n = len(p.prefix)
		case strings.HasPrefix(lower, plural):
			n = len(plural)
		default:
			continue
		}
		value = strings.TrimSpace(f[n:])
		if value == "" {
			return "", "", false
		}
		return p.category, value, true
	}
	return "", "", false
}

// adjust applies one feedback step to weight, clamped to the valid range.
func adjust(weight float64, positive bool) float64 {
	step := NegativeStep
	if positive {
		step = PositiveStep
	}
	return min(MaxWeight, max(MinWeight, weight+step))
}
