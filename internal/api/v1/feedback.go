package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vmunix/reelsearch/internal/feedback"
)

// requireFeedback wraps a handler and returns 503 if feedback is not configured.
func (s *Server) requireFeedback(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Feedback == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Feedback not configured")
			return
		}
		next(w, r)
	}
}

// requireCache wraps a handler and returns 503 if no cache is configured.
func (s *Server) requireCache(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Cache == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Cache not configured")
			return
		}
		next(w, r)
	}
}

func (s *Server) storeFeedback(w http.ResponseWriter, r *http.Request) {
	var rec feedback.Record
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if err := s.deps.Feedback.StoreFeedback(r.Context(), &rec); err != nil {
		if errors.Is(err, feedback.ErrInvalidFeedback) {
			writeError(w, http.StatusBadRequest, "INVALID_FEEDBACK", err.Error())
			return
		}
		s.log.Error("store feedback failed", "user", rec.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "FEEDBACK_ERROR", "Error storing feedback")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Feedback stored successfully"})
}

func (s *Server) getWeights(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	weights, err := s.deps.Feedback.PersonalizedWeights(r.Context(), userID)
	if err != nil {
		s.log.Error("get weights failed", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "FEEDBACK_ERROR", "Error retrieving weights")
		return
	}

	writeJSON(w, http.StatusOK, weights)
}
