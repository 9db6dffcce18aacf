package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/feedback"
)

// Client wraps HTTP calls to the reelsearch server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new reelsearch API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// HealthResponse is the server health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Search runs a search. Zero page and empty user are omitted.
func (c *Client) Search(query string, page int, userID string) (*aggregator.Response, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if userID != "" {
		params.Set("userId", userID)
	}
	var resp aggregator.Response
	if err := c.get("/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendFeedback submits a feedback record and returns the server's message.
func (c *Client) SendFeedback(rec *feedback.Record) (string, error) {
	var resp messageResponse
	if err := c.post("/feedback", rec, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Weights fetches a user's personalized weights.
func (c *Client) Weights(userID string) (*feedback.Weights, error) {
	var w feedback.Weights
	if err := c.get("/feedback/weights/"+url.PathEscape(userID), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ClearCache empties the server's result cache.
func (c *Client) ClearCache() error {
	return c.delete("/cache")
}

// Health checks server health.
func (c *Client) Health() (*HealthResponse, error) {
	var h HealthResponse
	if err := c.get("/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return serverError(resp)
	}
	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return serverError(resp)
	}
	return nil
}

// serverError formats a non-2xx response, preferring the JSON error field.
func serverError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		if e.Message != "" {
			return fmt.Errorf("server error %d: %s: %s", resp.StatusCode, e.Error, e.Message)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, e.Error)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
