package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLite is a Cache persisted in the search_cache table, so entries
// survive restarts of a single instance.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLite creates a SQLite-backed cache. The schema comes from migrations.
func NewSQLite(db *sql.DB, ttl time.Duration) *SQLite {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SQLite{db: db, ttl: ttl, now: time.Now}
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	var storedAt int64

	err := s.db.QueryRowContext(ctx,
		"SELECT value, stored_at FROM search_cache WHERE key = ?", key,
	).Scan(&value, &storedAt)
	if err != nil {
		return nil, false
	}

	entry := Entry{Data: value, Timestamp: time.UnixMilli(storedAt)}
	if entry.expired(s.now(), s.ttl) {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM search_cache WHERE key = ? AND stored_at = ?", key, storedAt)
		return nil, false
	}
	return entry.Data, true
}

func (s *SQLite) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_cache (key, value, stored_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, stored_at = excluded.stored_at`,
		key, data, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM search_cache"); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}
