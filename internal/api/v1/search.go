package v1

import (
	"errors"
	"net/http"

	"github.com/vmunix/reelsearch/internal/aggregator"
)

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	if query == "" {
		query = q.Get("q")
	}

	resp, err := s.deps.Searcher.Search(r.Context(), aggregator.Request{
		Query:  query,
		Page:   queryInt(r, "page", 1),
		UserID: q.Get("userId"),
	})
	if err != nil {
		if errors.Is(err, aggregator.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "INVALID_QUERY", "Search query is required")
			return
		}
		s.log.Error("search failed", "query", query, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "Internal server error", Message: err.Error(), Code: "SEARCH_FAILED",
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
