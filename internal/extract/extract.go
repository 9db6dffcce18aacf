// Package extract turns a raw search query into provider search terms.
package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/vmunix/reelsearch/internal/ai"
	"github.com/vmunix/reelsearch/pkg/title"
)

// DefaultTimeout bounds a delegated extraction call.
const DefaultTimeout = 5 * time.Second

// StopWords are dropped by the fallback tokenizer.
var StopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"in": true, "on": true, "at": true, "to": true,
	"of": true, "a": true, "an": true,
}

const systemPrompt = `You extract search terms from movie search queries.
Return only a JSON array of lowercase strings: movie titles, person names,
genres and keywords mentioned in the query. Keep multi-word names together.
Example: "heist movies with al pacino" -> ["heist", "al pacino"]`

// Extractor produces search terms, delegating to an LLM when one is configured.
type Extractor struct {
	provider ai.Provider
	timeout  time.Duration
	log      *slog.Logger
}

// New creates an Extractor. A nil provider always uses Tokenize.
func New(provider ai.Provider, timeout time.Duration, logger *slog.Logger) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{provider: provider, timeout: timeout, log: logger}
}

// Extract returns the ordered, de-duplicated terms for raw.
// The full lowercased query is always the first term. Any failure of the
// delegated call falls back to Tokenize; Extract never fails.
func (e *Extractor) Extract(ctx context.Context, raw string) []string {
	if title.Query(raw) == "" {
		return nil
	}
	if e.provider == nil {
		return Tokenize(raw)
	}

	start := time.Now()
	terms, err := e.delegate(ctx, raw)
	if err != nil {
		e.log.Warn("term extraction failed, using tokenizer",
			"provider", e.provider.Name(),
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return Tokenize(raw)
	}

	e.log.Debug("terms extracted",
		"provider", e.provider.Name(),
		"terms", len(terms),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return withFullQuery(raw, terms)
}

func (e *Extractor) delegate(ctx context.Context, raw string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.Chat(ctx, []ai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: raw},
	})
	if err != nil {
		return nil, err
	}
	return ParseTerms(resp.Content)
}

// Tokenize is the deterministic fallback: lowercase, split on whitespace,
// drop tokens of two characters or fewer and stop words. The full query
// comes first so phrase matches still work.
func Tokenize(raw string) []string {
	full := title.Query(raw)
	if full == "" {
		return nil
	}

	var words []string
	for _, w := range strings.Fields(full) {
		if len(w) <= 2 || StopWords[w] {
			continue
		}
		words = append(words, w)
	}
	return withFullQuery(raw, words)
}

// withFullQuery prepends the full query to terms and removes duplicates.
func withFullQuery(raw string, terms []string) []string {
	full := title.Query(raw)
	out := []string{full}
	seen := map[string]bool{full: true}
	for _, t := range terms {
		t = title.Query(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ParseTerms reads an LLM reply: a JSON array of strings or an object with
// a "terms" array, optionally wrapped in a code fence. Anything else,
// including an empty list, is ErrMalformed.
func ParseTerms(content string) ([]string, error) {
	content = stripFence(strings.TrimSpace(content))

	var terms []string
	if err := json.Unmarshal([]byte(content), &terms); err != nil {
		var obj struct {
			Terms []string `json:"terms"`
		}
		if err := json.Unmarshal([]byte(content), &obj); err != nil {
			return nil, ErrMalformed
		}
		terms = obj.Terms
	}

	var out []string
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, ErrMalformed
	}
	return out, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
