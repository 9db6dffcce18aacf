package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/feedback"
)

func batmanPage() aggregator.Response {
	return aggregator.Response{
		TotalResults: 15, TotalPages: 2, Page: 1, HasMore: true,
		Search: []aggregator.Result{
			{
				ID: 272, Title: "Batman Begins", Year: 2005, VoteAverage: 7.7,
				Genres: []string{"Action", "Crime"}, Directors: []string{"Christopher Nolan"},
				Ratings:             &aggregator.Ratings{IMDBRating: 8.2},
				RecommendationScore: 190,
			},
			{ID: 268, Title: "Batman", Year: 1989, VoteAverage: 7.2, RecommendationScore: 150},
		},
	}
}

func TestSearchCmd_Human(t *testing.T) {
	srv := newMockServer(t).ExpectGET().ExpectPath("/search").RespondJSON(batmanPage()).Build()

	out, err := run(t, srv.URL, "search", "batman")
	require.NoError(t, err)
	assert.Contains(t, out, `Found 15 movies for "batman" (page 1 of 2)`)
	assert.Contains(t, out, "Batman Begins")
	assert.Contains(t, out, "dir. Christopher Nolan")
	assert.Contains(t, out, "IMDb 8.2")
	assert.Contains(t, out, "--page 2")
}

func TestSearchCmd_JoinsArgs(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "heist movies with al pacino", r.URL.Query().Get("query"))
			assert.Equal(t, "bob", r.URL.Query().Get("userId"))
			respondJSON(t, w, http.StatusOK, aggregator.Response{Page: 1, Search: []aggregator.Result{}})
		}).
		Build()

	out, err := run(t, srv.URL, "search", "heist", "movies", "with", "al", "pacino", "--user", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "No movies found")
}

func TestSearchCmd_JSON(t *testing.T) {
	srv := newMockServer(t).RespondJSON(batmanPage()).Build()

	out, err := run(t, srv.URL, "--json", "search", "batman")
	require.NoError(t, err)

	var resp aggregator.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 15, resp.TotalResults)
	assert.Len(t, resp.Search, 2)
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	_, err := run(t, "http://127.0.0.1:1", "search")
	assert.Error(t, err)
}

func TestFeedbackCmd(t *testing.T) {
	srv := newMockServer(t).
		ExpectPOST().
		ExpectPath("/feedback").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var rec feedback.Record
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			assert.Equal(t, "alice", rec.UserID)
			assert.Equal(t, "negative", rec.Rating)
			assert.Equal(t, []string{"genre:Crime", "actor:Al Pacino"}, rec.MatchFactors)
			assert.Equal(t, "old thrillers", rec.SearchContext)
			respondJSON(t, w, http.StatusOK, map[string]string{"message": "Feedback stored successfully"})
		}).
		Build()

	out, err := run(t, srv.URL, "feedback", "--user", "alice", "--rating", "negative",
		"--factor", "genre:Crime", "--factor", "actor:Al Pacino", "--context", "old thrillers")
	require.NoError(t, err)
	assert.Contains(t, out, "Feedback stored successfully")
}

func TestFeedbackCmd_RequiresUser(t *testing.T) {
	_, err := run(t, "http://127.0.0.1:1", "feedback", "--factor", "genre:Crime")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user")
}

func TestWeightsCmd(t *testing.T) {
	w := feedback.NewWeights()
	w.Genres["Crime"] = 1.3
	w.Genres["Action"] = 0.9
	srv := newMockServer(t).ExpectGET().ExpectPath("/feedback/weights/alice").RespondJSON(w).Build()

	out, err := run(t, srv.URL, "weights", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "GENRES")
	assert.Contains(t, out, "1.30")
	assert.Less(t, strings.Index(out, "Action"), strings.Index(out, "Crime"))
	assert.Contains(t, out, "(none)")
}

func TestCacheClearCmd(t *testing.T) {
	srv := newMockServer(t).ExpectDELETE().ExpectPath("/cache").RespondStatus(http.StatusNoContent).Build()

	out, err := run(t, srv.URL, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")
}

func TestStatusCmd(t *testing.T) {
	srv := newMockServer(t).ExpectGET().ExpectPath("/health").
		RespondJSON(HealthResponse{Status: "ok", Version: "0.3.0"}).Build()

	out, err := run(t, srv.URL, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:   ok")
	assert.Contains(t, out, "Version:  0.3.0")
}

func TestStatusCmd_ServerDown(t *testing.T) {
	_, err := run(t, "http://127.0.0.1:1", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status check failed")
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := run(t, "", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tmdb]")

	_, err = run(t, "", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, "", "init", "--force", path)
	require.NoError(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Amélie...", truncate("Amélie Poulain", 9))
}
