package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/aayush0444/Cine-Suggest/internal/cache"
	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/tmdb"
)

// Placeholder cuando TMDB falla o no hay poster.
const PlaceholderPoster = "https://via.placeholder.com/500x750?text=No+Poster"

// MetadataService resuelve el enriquecimiento externo (poster, rating,
// año) vía TMDB. Es decoración pura: NUNCA devuelve error al caller,
// si la llamada falla degrada a placeholder y el ranking sale igual.
type MetadataService struct {
	client    *tmdb.Client
	imageBase string
}

func NewMetadataService(client *tmdb.Client, imageBase string) *MetadataService {
	return &MetadataService{client: client, imageBase: imageBase}
}

// FetchMetadata busca los datos de una película por su id de TMDB.
// Cachea 24h en Redis; ante cualquier falla devuelve el placeholder.
func (s *MetadataService) FetchMetadata(ctx context.Context, movieID int) *models.Metadata {
	key := fmt.Sprintf("tmdb:movie:%d", movieID)

	var cached models.Metadata
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return &cached
	}

	details, err := s.client.GetMovie(ctx, movieID)
	if err != nil {
		log.Printf("[tmdb] fallo para movie %d, usando placeholder: %v", movieID, err)
		return placeholderMetadata(movieID)
	}

	meta := &models.Metadata{
		MovieID:     movieID,
		PosterURL:   PlaceholderPoster,
		Rating:      fmt.Sprintf("%.1f", details.VoteAverage),
		ReleaseYear: "N/A",
		Overview:    details.Overview,
	}
	if details.PosterPath != "" {
		meta.PosterURL = s.imageBase + details.PosterPath
	}
	if len(details.ReleaseDate) >= 4 {
		meta.ReleaseYear = details.ReleaseDate[:4]
	}

	var genres []string
	for _, g := range details.Genres {
		genres = append(genres, g.Name)
	}
	meta.Genres = strings.Join(genres, ", ")

	// cache 24 horas; los placeholders no se cachean para que una caída
	// transitoria de TMDB no deje posters rotos un día entero
	if err := cache.SetJSON(ctx, key, meta, 24*60*60); err != nil {
		log.Printf("error cacheando metadata TMDB en Redis: %v", err)
	}

	return meta
}

// Decorate completa el campo Metadata de cada ítem recomendado.
// Las consultas van en paralelo (es la única operación con latencia
// real); el resultado del ranking ya está decidido en este punto.
func (s *MetadataService) Decorate(ctx context.Context, items []models.RecItem) {
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			items[i].Metadata = s.FetchMetadata(ctx, items[i].MovieID)
		}(i)
	}
	wg.Wait()
}

func placeholderMetadata(movieID int) *models.Metadata {
	return &models.Metadata{
		MovieID:     movieID,
		PosterURL:   PlaceholderPoster,
		Rating:      "N/A",
		ReleaseYear: "N/A",
		Placeholder: true,
	}
}
