package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key",
		WithBaseURL(srv.URL),
		WithRateLimit(1000),
		WithMaxRetries(3),
	)
}

func TestSearchMovie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Inception", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"id":27205,"title":"Inception","poster_path":"/inc.jpg"}]}`))
	})

	res, err := client.SearchMovie(context.Background(), "Inception")
	require.NoError(t, err)
	assert.Equal(t, 27205, res.ID)
	assert.Equal(t, "/inc.jpg", res.PosterPath)
}

func TestSearchMovieNoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})
	_, err := client.SearchMovie(context.Background(), "does not exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMovieDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/27205", r.URL.Path)
		w.Write([]byte(`{"id":27205,"title":"Inception","genres":[{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}]}`))
	})

	details, err := client.GetMovieDetails(context.Background(), 27205)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Science Fiction"}, details.GenreNames())
}

func TestRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"results":[{"id":1,"title":"Late Success","poster_path":"/ok.jpg"}]}`))
	})

	res, err := client.SearchMovie(context.Background(), "Late Success")
	require.NoError(t, err)
	assert.Equal(t, "Late Success", res.Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.SearchMovie(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
