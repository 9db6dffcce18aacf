package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/reelsearch/internal/aggregator"
	"github.com/vmunix/reelsearch/internal/feedback"
)

func TestClient_Search(t *testing.T) {
	srv := newMockServer(t).
		ExpectGET().
		ExpectPath("/search").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "the dark knight", r.URL.Query().Get("query"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "alice", r.URL.Query().Get("userId"))
			respondJSON(t, w, http.StatusOK, aggregator.Response{
				TotalResults: 12, TotalPages: 2, Page: 2,
				Search: []aggregator.Result{{ID: 155, Title: "The Dark Knight", Year: 2008}},
			})
		}).
		Build()

	resp, err := NewClient(srv.URL).Search("the dark knight", 2, "alice")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalResults)
	require.Len(t, resp.Search, 1)
	assert.Equal(t, int64(155), resp.Search[0].ID)
}

func TestClient_Search_OmitsDefaults(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("page"))
			assert.False(t, r.URL.Query().Has("userId"))
			respondJSON(t, w, http.StatusOK, aggregator.Response{Page: 1})
		}).
		Build()

	_, err := NewClient(srv.URL).Search("heat", 0, "")
	require.NoError(t, err)
}

func TestClient_ServerError(t *testing.T) {
	srv := newMockServer(t).RespondError(http.StatusBadRequest, "Search query is required").Build()

	_, err := NewClient(srv.URL).Search("", 1, "")
	require.Error(t, err)
	assert.Equal(t, "server error 400: Search query is required", err.Error())
}

func TestClient_ServerError_PlainBody(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway\n"))
		}).
		Build()

	_, err := NewClient(srv.URL).Health()
	require.Error(t, err)
	assert.Equal(t, "server error 502: bad gateway", err.Error())
}

func TestClient_SendFeedback(t *testing.T) {
	srv := newMockServer(t).
		ExpectPOST().
		ExpectPath("/feedback").
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var rec feedback.Record
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			assert.Equal(t, "alice", rec.UserID)
			assert.Equal(t, []string{"genre:Crime"}, rec.MatchFactors)
			respondJSON(t, w, http.StatusOK, map[string]string{"message": "Feedback stored successfully"})
		}).
		Build()

	msg, err := NewClient(srv.URL).SendFeedback(&feedback.Record{
		UserID: "alice", Rating: "positive", MatchFactors: []string{"genre:Crime"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Feedback stored successfully", msg)
}

func TestClient_Weights_EscapesUser(t *testing.T) {
	srv := newMockServer(t).
		ExpectGET().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/feedback/weights/a%20b", r.URL.EscapedPath())
			respondJSON(t, w, http.StatusOK, feedback.DefaultWeights())
		}).
		Build()

	w, err := NewClient(srv.URL).Weights("a b")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w.Actors["weight"])
}

func TestClient_ClearCache(t *testing.T) {
	srv := newMockServer(t).ExpectDELETE().ExpectPath("/cache").RespondStatus(http.StatusNoContent).Build()

	require.NoError(t, NewClient(srv.URL+"/").ClearCache())
}

func TestClient_ConnectionRefused(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1").Health()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
