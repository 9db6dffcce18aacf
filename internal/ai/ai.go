// Package ai provides LLM backends used for query understanding.
package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
)

// Sentinel errors for provider responses.
var (
	ErrUnauthorized  = errors.New("unauthorized: invalid API key")
	ErrEmptyResponse = errors.New("empty response from provider")
)

// maxResponseBytes caps how much of a provider reply is read.
const maxResponseBytes = 1 << 20

// Provider is an LLM backend.
type Provider interface {
	// Chat sends the conversation and returns the model's reply.
	Chat(ctx context.Context, messages []Message) (*Response, error)
	// Name identifies the backend in logs and metrics.
	Name() string
}

// Message is a chat message.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Response is an LLM response.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model,omitempty"`
}

// Option configures a provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

func buildOptions(opts []Option) options {
	o := options{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// splitSystem separates system messages, which some APIs take out of band.
func splitSystem(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			if system != "" {
				system += "\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}
