package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://www.omdbapi.com"
	defaultRateLimit = 10
	maxResponseBytes = 1 << 20
)

// Sentinel errors for OMDb responses.
var (
	ErrNotFound     = errors.New("title not found")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrLimitReached = errors.New("request limit reached")
)

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit caps outbound requests per second. Zero or less disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "omdb")
	}
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchByTitle searches movies by title. No matches is an empty slice, not an error.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]SearchItem, error) {
	params := url.Values{}
	params.Set("s", title)
	params.Set("type", "movie")

	var out searchResponse
	if err := c.get(ctx, params, &out); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []SearchItem{}, nil
		}
		return nil, err
	}
	return out.Search, nil
}

// LookupByID fetches the full record for an IMDb id.
func (c *Client) LookupByID(ctx context.Context, imdbID string) (*Record, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "short")

	var out Record
	if err := c.get(ctx, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs the request. OMDb reports most failures in-band with
// "Response":"False", so the body is inspected even on 200.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if c.log != nil {
		c.log.Debug("omdb request", "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("OMDb API error: %s", resp.Status)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if strings.EqualFold(env.Response, "False") {
		return classify(env.Error)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OMDb API error: %s", resp.Status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func classify(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not found"):
		return ErrNotFound
	case strings.Contains(lower, "invalid api key"), strings.Contains(lower, "no api key"):
		return ErrUnauthorized
	case strings.Contains(lower, "limit reached"):
		return ErrLimitReached
	default:
		return fmt.Errorf("OMDb API error: %s", msg)
	}
}
