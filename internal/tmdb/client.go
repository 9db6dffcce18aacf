package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://api.themoviedb.org"
	defaultLanguage  = "en-US"
	defaultRateLimit = 40 // requests per second
	maxResponseBytes = 4 << 20
)

// Sentinel errors for TMDB API responses.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
)

// Client is a TMDB API v3 client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the language for localized fields.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithRateLimit caps outbound requests per second. Zero or less disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		language: defaultLanguage,
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

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]MovieResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var out pagedMovies
	if err := c.get(ctx, "/3/search/movie", params, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// SearchPeople searches the person index.
func (c *Client) SearchPeople(ctx context.Context, query string) ([]Person, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var out pagedPeople
	if err := c.get(ctx, "/3/search/person", params, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// PersonCredits fetches a person's movie cast and crew credits.
func (c *Client) PersonCredits(ctx context.Context, personID int64) (*PersonCredits, error) {
	var out PersonCredits
	if err := c.get(ctx, "/3/person/"+strconv.FormatInt(personID, 10)+"/movie_credits", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMovie fetches movie details by TMDB ID.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	var out Movie
	if err := c.get(ctx, "/3/movie/"+strconv.FormatInt(tmdbID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovieKeywords fetches a movie's keyword tags.
func (c *Client) MovieKeywords(ctx context.Context, tmdbID int64) ([]Keyword, error) {
	var out keywordsResponse
	if err := c.get(ctx, "/3/movie/"+strconv.FormatInt(tmdbID, 10)+"/keywords", nil, &out); err != nil {
		return nil, err
	}
	return out.Keywords, nil
}

// WatchProviders fetches streaming availability keyed by country code.
func (c *Client) WatchProviders(ctx context.Context, tmdbID int64) (map[string]RegionProviders, error) {
	var out watchProvidersResponse
	if err := c.get(ctx, "/3/movie/"+strconv.FormatInt(tmdbID, 10)+"/watch/providers", nil, &out); err != nil {
		return nil, err
	}
	if out.Results == nil {
		return map[string]RegionProviders{}, nil
	}
	return out.Results, nil
}

// MovieCredits fetches a movie's cast and crew.
func (c *Client) MovieCredits(ctx context.Context, tmdbID int64) (*Credits, error) {
	var out Credits
	if err := c.get(ctx, "/3/movie/"+strconv.FormatInt(tmdbID, 10)+"/credits", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.log != nil {
		c.log.Debug("tmdb request",
			"path", path,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
