package service

import (
	"context"

	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/repository"
)

type MovieService struct {
	movies    *repository.MovieRepository
	artifacts *repository.ArtifactSet
}

func NewMovieService(m *repository.MovieRepository, artifacts *repository.ArtifactSet) *MovieService {
	return &MovieService{movies: m, artifacts: artifacts}
}

func (s *MovieService) GetMovie(ctx context.Context, id int) (*models.MovieDoc, error) {
	return s.movies.GetByID(ctx, id)
}

func (s *MovieService) Search(
	ctx context.Context,
	q, genre string,
	yearFrom, yearTo, limit, offset int,
) ([]models.MovieDoc, error) {
	return s.movies.Search(ctx, q, genre, yearFrom, yearTo, limit, offset)
}

// Titles devuelve todos los títulos en orden de catálogo (alimenta el
// dropdown de la UI). Sale de los artefactos en memoria, sin tocar Mongo.
func (s *MovieService) Titles(ctx context.Context) []string {
	titles := make([]string, len(s.artifacts.Movies))
	for i, m := range s.artifacts.Movies {
		titles[i] = m.Title
	}
	return titles
}
