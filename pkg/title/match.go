package title

import (
	"github.com/hbollon/go-edlib"
)

// Confidence thresholds for Jaro-Winkler similarity.
const (
	ConfidenceHigh   = 0.95
	ConfidenceMedium = 0.85
)

// Similarity returns the Jaro-Winkler similarity of two titles after
// normalization. Identical keys score 1.
func Similarity(a, b string) float64 {
	ka, kb := Key(a), Key(b)
	if ka == "" || kb == "" {
		return 0
	}
	if ka == kb {
		return 1
	}
	return float64(edlib.JaroWinklerSimilarity(ka, kb))
}

// Match is the best candidate found by BestMatch.
type Match struct {
	Index int
	Score float64
}

// BestMatch finds the candidate most similar to target.
// Returns Index -1 when no candidate reaches minScore.
func BestMatch(target string, candidates []string, minScore float64) Match {
	best := Match{Index: -1}
	for i, c := range candidates {
		score := Similarity(target, c)
		if score >= minScore && score > best.Score {
			best = Match{Index: i, Score: score}
		}
	}
	return best
}
