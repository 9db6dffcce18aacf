package aggregator

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/vmunix/reelsearch/internal/feedback"
)

// Bonus magnitudes for query matches against an item's facets.
const (
	KeywordBonus = 50
	GenreBonus   = 30
	CastBonus    = 100
)

// ScoreEnv holds the variables visible to a scoring formula.
type ScoreEnv struct {
	VoteAverage  float64 `expr:"voteAverage"`
	Popularity   float64 `expr:"popularity"`
	VoteCount    float64 `expr:"voteCount"`
	KeywordBonus float64 `expr:"keywordBonus"`
	GenreBonus   float64 `expr:"genreBonus"`
	CastBonus    float64 `expr:"castBonus"`
	EraWeight    float64 `expr:"eraWeight"`
}

// DefaultScore is the built-in recommendation formula.
func DefaultScore(env ScoreEnv) float64 {
	base := env.VoteAverage*10 + env.Popularity*0.1 + env.VoteCount*0.01
	return base*env.EraWeight + env.KeywordBonus + env.GenreBonus + env.CastBonus
}

// Scorer computes recommendation scores, optionally with a configured
// formula in place of DefaultScore.
type Scorer struct {
	program *vm.Program
	log     *slog.Logger
}

// NewScorer compiles formula. An empty formula uses DefaultScore.
func NewScorer(formula string, log *slog.Logger) (*Scorer, error) {
	s := &Scorer{log: log}
	if strings.TrimSpace(formula) == "" {
		return s, nil
	}
	program, err := expr.Compile(formula, expr.Env(ScoreEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile scoring formula: %w", err)
	}
	s.program = program
	return s, nil
}

// Env builds the formula variables for r against the raw query. weights
// may be nil, meaning every weight is 1.
func Env(raw string, r *Result, weights *feedback.Weights) ScoreEnv {
	q := strings.ToLower(raw)
	env := ScoreEnv{
		VoteAverage: r.VoteAverage,
		Popularity:  r.Popularity,
		VoteCount:   float64(r.VoteCount),
		EraWeight:   1,
	}

	if w, ok := matchWeight(q, weights, feedback.CategoryKeywords, r.Keywords); ok {
		env.KeywordBonus = KeywordBonus * w
	}
	if w, ok := matchWeight(q, weights, feedback.CategoryGenres, r.Genres); ok {
		env.GenreBonus = GenreBonus * w
	}
	actorW, actorOK := matchWeight(q, weights, feedback.CategoryActors, r.Cast)
	directorW, directorOK := matchWeight(q, weights, feedback.CategoryDirectors, r.Directors)
	switch {
	case actorOK && directorOK:
		env.CastBonus = CastBonus * max(actorW, directorW)
	case actorOK:
		env.CastBonus = CastBonus * actorW
	case directorOK:
		env.CastBonus = CastBonus * directorW
	}

	if weights != nil && r.Year > 0 {
		if w, ok := weights.Lookup(feedback.CategoryEras, Decade(r.Year)); ok {
			env.EraWeight = w
		}
	}
	return env
}

// Decade names the decade of year, e.g. 1994 -> "1990s".
func Decade(year int) string {
	return fmt.Sprintf("%ds", year/10*10)
}

// matchWeight reports whether any value occurs in the lowercased query and
// returns the highest personalized weight among the matches.
func matchWeight(q string, weights *feedback.Weights, category string, values []string) (float64, bool) {
	best, matched := 0.0, false
	for _, v := range values {
		lv := strings.ToLower(strings.TrimSpace(v))
		if lv == "" || !strings.Contains(q, lv) {
			continue
		}
		w := feedback.DefaultWeight
		if weights != nil {
			if pw, ok := weights.Lookup(category, v); ok {
				w = pw
			}
		}
		if !matched || w > best {
			best = w
		}
		matched = true
	}
	return best, matched
}

// Score returns the rounded recommendation score for r.
func (s *Scorer) Score(raw string, r *Result, weights *feedback.Weights) int {
	env := Env(raw, r, weights)
	if s.program == nil {
		return int(math.Round(DefaultScore(env)))
	}

	out, err := expr.Run(s.program, env)
	if err != nil {
		s.log.Warn("scoring formula failed, using default", "id", r.ID, "error", err)
		return int(math.Round(DefaultScore(env)))
	}
	f, ok := out.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		s.log.Warn("scoring formula returned non-number, using default", "id", r.ID)
		return int(math.Round(DefaultScore(env)))
	}
	return int(math.Round(f))
}
