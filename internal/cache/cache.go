// Package cache provides the time-bounded result cache shared across requests.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/vmunix/reelsearch/internal/metrics"
)

// DefaultTTL is how long entries stay valid when no TTL is configured.
const DefaultTTL = time.Hour

// Cache stores opaque values by key. Entries older than the backend's TTL
// are never returned. Implementations are safe for concurrent use; when two
// writers race on one key the last write wins.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, data []byte) error
	Clear(ctx context.Context) error
}

// Entry is a cached value and the time it was stored.
type Entry struct {
	Data      []byte
	Timestamp time.Time
}

// expired reports whether e is older than ttl at now.
func (e Entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) > ttl
}

// Key builds a composite cache key, e.g. Key("search", "batman").
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

// kind is the first segment of a key, used as a metrics label.
func kind(key string) string {
	if i := strings.IndexByte(key, '|'); i >= 0 {
		return key[:i]
	}
	return key
}

// GetJSON decodes a cached value into out. A value that fails to decode is
// reported as a miss.
func GetJSON(ctx context.Context, c Cache, key string, out any) bool {
	data, ok := c.Get(ctx, key)
	if ok && json.Unmarshal(data, out) == nil {
		metrics.CacheHitsTotal.WithLabelValues(kind(key)).Inc()
		return true
	}
	metrics.CacheMissesTotal.WithLabelValues(kind(key)).Inc()
	return false
}

// PutJSON encodes v and stores it under key.
func PutJSON(ctx context.Context, c Cache, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Put(ctx, key, data)
}
