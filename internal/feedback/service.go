package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vmunix/reelsearch/internal/metrics"
)

// Service stores feedback and maintains each user's pattern.
type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewService creates a feedback service over store.
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
		locks: make(map[string]*userLock),
	}
}

// lock serializes pattern updates per user and returns the unlock func.
func (s *Service) lock(userID string) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, userID)
		}
		s.mu.Unlock()
	}
}

// StoreFeedback validates and saves rec, then folds its match factors into
// the user's pattern. rec.ID and rec.Timestamp are assigned.
func (s *Service) StoreFeedback(ctx context.Context, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: empty record", ErrInvalidFeedback)
	}
	rec.UserID = strings.TrimSpace(rec.UserID)
	if rec.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidFeedback)
	}

	rec.ID = uuid.NewString()
	rec.Timestamp = s.now().UTC()
	if rec.MatchFactors == nil {
		rec.MatchFactors = []string{}
	}
	if rec.SearchResults == nil {
		rec.SearchResults = []ResultRef{}
	}

	if err := s.store.InsertFeedback(ctx, rec); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	if err := s.updatePattern(ctx, rec); err != nil {
		return fmt.Errorf("update pattern: %w", err)
	}

	label := "negative"
	if rec.Rating == "positive" {
		label = "positive"
	}
	metrics.FeedbackTotal.WithLabelValues(label).Inc()
	s.log.Info("feedback stored", "user", rec.UserID, "id", rec.ID, "rating", rec.Rating, "factors", len(rec.MatchFactors))
	return nil
}

func (s *Service) updatePattern(ctx context.Context, rec *Record) error {
	unlock := s.lock(rec.UserID)
	defer unlock()

	pattern, err := s.store.GetPattern(ctx, rec.UserID)
	if errors.Is(err, ErrNotFound) {
		pattern = &Pattern{UserID: rec.UserID, Preferences: NewWeights()}
	} else if err != nil {
		return err
	}

	positive := rec.Rating == "positive"
	for _, factor := range rec.MatchFactors {
		category, value, ok := ParseMatchFactor(factor)
		if !ok {
			s.log.Debug("ignoring match factor", "factor", factor)
			continue
		}
		m := pattern.Preferences.Category(category)
		if m == nil {
			m = map[string]float64{}
			setCategory(&pattern.Preferences, category, m)
		}
		current, found := m[value]
		if !found {
			current = DefaultWeight
		}
		m[value] = adjust(current, positive)
	}

	pattern.LastUpdated = s.now().UTC()
	return s.store.SavePattern(ctx, pattern)
}

func setCategory(w *Weights, category string, m map[string]float64) {
	switch category {
	case CategoryGenres:
		w.Genres = m
	case CategoryActors:
		w.Actors = m
	case CategoryDirectors:
		w.Directors = m
	case CategoryKeywords:
		w.Keywords = m
	case CategoryEras:
		w.Eras = m
	}
}

// PersonalizedWeights returns the user's learned weights. Users without a
// pattern get DefaultWeights. Store failures are returned.
func (s *Service) PersonalizedWeights(ctx context.Context, userID string) (Weights, error) {
	pattern, err := s.store.GetPattern(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return DefaultWeights(), nil
	}
	if err != nil {
		return Weights{}, fmt.Errorf("get pattern for %s: %w", userID, err)
	}

	w := pattern.Preferences
	for _, c := range Categories {
		if w.Category(c) == nil {
			setCategory(&w, c, map[string]float64{})
		}
	}
	return w, nil
}
