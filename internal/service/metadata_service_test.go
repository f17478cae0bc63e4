package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMetadata_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 603,
			"poster_path": "/matrix.jpg",
			"vote_average": 8.2,
			"release_date": "1999-03-30",
			"genres": [{"name": "Action"}]
		}`))
	}))
	defer srv.Close()

	svc := NewMetadataService(tmdb.NewClient("k", srv.URL), "https://img.example/w500")

	meta := svc.FetchMetadata(context.Background(), 603)
	require.NotNil(t, meta)

	assert.Equal(t, "https://img.example/w500/matrix.jpg", meta.PosterURL)
	assert.Equal(t, "8.2", meta.Rating)
	assert.Equal(t, "1999", meta.ReleaseYear)
	assert.Equal(t, "Action", meta.Genres)
	assert.False(t, meta.Placeholder)
}

func TestFetchMetadata_FallbackToPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewMetadataService(tmdb.NewClient("k", srv.URL), "https://img.example/w500")

	// nunca devuelve error: degrada a placeholder
	meta := svc.FetchMetadata(context.Background(), 42)
	require.NotNil(t, meta)

	assert.True(t, meta.Placeholder)
	assert.Equal(t, PlaceholderPoster, meta.PosterURL)
	assert.Equal(t, "N/A", meta.Rating)
	assert.Equal(t, "N/A", meta.ReleaseYear)
}

func TestFetchMetadata_NoPosterPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 9, "vote_average": 6.0, "release_date": ""}`))
	}))
	defer srv.Close()

	svc := NewMetadataService(tmdb.NewClient("k", srv.URL), "https://img.example/w500")

	meta := svc.FetchMetadata(context.Background(), 9)
	assert.Equal(t, PlaceholderPoster, meta.PosterURL)
	assert.Equal(t, "N/A", meta.ReleaseYear)
}

func TestDecorate_FillsEveryItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "poster_path": "/p.jpg", "vote_average": 7.0}`))
	}))
	defer srv.Close()

	svc := NewMetadataService(tmdb.NewClient("k", srv.URL), "https://img.example/w500")

	items := []models.RecItem{
		{MovieID: 1, Title: "Uno"},
		{MovieID: 2, Title: "Dos"},
		{MovieID: 3, Title: "Tres"},
	}
	svc.Decorate(context.Background(), items)

	for _, it := range items {
		require.NotNil(t, it.Metadata, "ítem %s sin metadata", it.Title)
		assert.Equal(t, "https://img.example/w500/p.jpg", it.Metadata.PosterURL)
	}
}
