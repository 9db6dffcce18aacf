package feedback

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQLiteStore keeps feedback in the local database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a store over db. The schema comes from migrations.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) InsertFeedback(ctx context.Context, rec *Record) error {
	factors, err := json.Marshal(rec.MatchFactors)
	if err != nil {
		return fmt.Errorf("encode match factors: %w", err)
	}
	results, err := json.Marshal(rec.SearchResults)
	if err != nil {
		return fmt.Errorf("encode search results: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, user_id, search_context, match_factors, rating, note, search_results, ai_credits_used, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.SearchContext, string(factors), rec.Rating, rec.Note,
		string(results), rec.AICreditsUsed, rec.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// GetFeedback returns a stored record by id.
func (s *SQLiteStore) GetFeedback(ctx context.Context, id string) (*Record, error) {
	rec := &Record{}
	var factors, results string
	var created int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, search_context, match_factors, rating, note, search_results, ai_credits_used, created_at
		FROM feedback WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.UserID, &rec.SearchContext, &factors, &rec.Rating, &rec.Note, &results, &rec.AICreditsUsed, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feedback %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(factors), &rec.MatchFactors); err != nil {
		return nil, fmt.Errorf("decode match factors: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &rec.SearchResults); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	rec.Timestamp = time.UnixMilli(created).UTC()
	return rec, nil
}

func (s *SQLiteStore) GetPattern(ctx context.Context, userID string) (*Pattern, error) {
	return getPattern(ctx, s.db, userID)
}

func getPattern(ctx context.Context, q querier, userID string) (*Pattern, error) {
	p := &Pattern{UserID: userID, Preferences: NewWeights()}
	var updated int64
	err := q.QueryRowContext(ctx,
		"SELECT last_updated FROM search_patterns WHERE user_id = ?", userID,
	).Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pattern %s: %w", userID, err)
	}
	p.LastUpdated = time.UnixMilli(updated).UTC()

	rows, err := q.QueryContext(ctx,
		"SELECT category, value, weight FROM user_preferences WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences %s: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var category, value string
		var weight float64
		if err := rows.Scan(&category, &value, &weight); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		if m := p.Preferences.Category(category); m != nil {
			m[value] = weight
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}
	return p, nil
}

// SavePattern replaces the user's pattern in one transaction.
func (s *SQLiteStore) SavePattern(ctx context.Context, p *Pattern) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO search_patterns (user_id, last_updated) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET last_updated = excluded.last_updated`,
		p.UserID, p.LastUpdated.UnixMilli(),
	); err != nil {
		return fmt.Errorf("upsert pattern: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM user_preferences WHERE user_id = ?", p.UserID); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}

	for _, category := range Categories {
		for value, weight := range p.Preferences.Category(category) {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO user_preferences (user_id, category, value, weight) VALUES (?, ?, ?, ?)",
				p.UserID, category, value, weight,
			); err != nil {
				return fmt.Errorf("insert preference %s/%s: %w", category, value, err)
			}
		}
	}

	return tx.Commit()
}
