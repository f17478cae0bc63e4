package service

import (
	"context"

	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/repository"
)

// AdminMaintenanceService expone el estado de los artefactos: lo que
// hay en Mongo contra lo que este proceso cargó en memoria. Es solo
// lectura; los artefactos no se recargan en caliente (se regeneran
// con cmd/featurize y se reinicia el API).
type AdminMaintenanceService struct {
	movies    *repository.MovieRepository
	sims      *repository.SimilarityRepository
	artifacts *repository.ArtifactSet
}

func NewAdminMaintenanceService(
	movies *repository.MovieRepository,
	sims *repository.SimilarityRepository,
	artifacts *repository.ArtifactSet,
) *AdminMaintenanceService {
	return &AdminMaintenanceService{
		movies:    movies,
		sims:      sims,
		artifacts: artifacts,
	}
}

// GetArtifactSummary devuelve el resumen. Si los conteos de Mongo no
// coinciden con lo cargado, alguien corrió featurize sin reiniciar.
func (s *AdminMaintenanceService) GetArtifactSummary(ctx context.Context) (*models.AdminArtifactSummary, error) {
	moviesCount, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}

	rowsCount, err := s.sims.CountRows(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminArtifactSummary{
		MoviesInMongo:   moviesCount,
		RowsInMongo:     rowsCount,
		MoviesLoaded:    s.artifacts.Size(),
		Metric:          s.artifacts.Meta.Metric,
		VocabSize:       s.artifacts.Meta.VocabSize,
		MaxFeatures:     s.artifacts.Meta.MaxFeatures,
		ArtifactUpdated: s.artifacts.Meta.UpdatedAt,
	}, nil
}
