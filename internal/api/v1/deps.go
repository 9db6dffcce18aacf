package v1

import (
	"context"
	"errors"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/feedback"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Searcher,FeedbackService,CacheClearer

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Searcher runs the search pipeline.
type Searcher interface {
	Search(ctx context.Context, req aggregator.Request) (*aggregator.Response, error)
}

// FeedbackService stores feedback and serves learned weights.
type FeedbackService interface {
	StoreFeedback(ctx context.Context, rec *feedback.Record) error
	PersonalizedWeights(ctx context.Context, userID string) (feedback.Weights, error)
}

// CacheClearer empties the result cache.
type CacheClearer interface {
	Clear(ctx context.Context) error
}

// ServerDeps contains all dependencies for the API server.
// Searcher is required; the others may be nil.
type ServerDeps struct {
	Searcher Searcher
	Feedback FeedbackService
	Cache    CacheClearer
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Searcher == nil {
		return errors.New("searcher is required")
	}
	return nil
}
