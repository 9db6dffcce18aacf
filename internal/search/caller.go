package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/vmunix/reelsearch/internal/metrics"
)

// Caller bounds and times outbound provider calls for one request. All
// calls made through the same Caller share its in-flight limit, no matter
// how deeply the fan-out nests.
type Caller struct {
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewCaller creates a Caller allowing maxInFlight concurrent calls, each
// cut off after timeout.
func NewCaller(maxInFlight int, timeout time.Duration) *Caller {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Caller{sem: semaphore.NewWeighted(int64(maxInFlight)), timeout: timeout}
}

// Call runs fn under c's limit and timeout and records provider metrics.
func Call[T any](ctx context.Context, c *Caller, provider, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}
	defer c.sem.Release(1)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	v, err := fn(callCtx)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.ProviderRequestsTotal.WithLabelValues(provider, op, status).Inc()
	metrics.ProviderRequestDuration.WithLabelValues(provider, op).Observe(time.Since(start).Seconds())
	return v, err
}
