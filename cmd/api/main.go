package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/aayush0444/Cine-Suggest/docs" // swagger docs

	"github.com/aayush0444/Cine-Suggest/internal/cache"
	"github.com/aayush0444/Cine-Suggest/internal/config"
	"github.com/aayush0444/Cine-Suggest/internal/db"
	"github.com/aayush0444/Cine-Suggest/internal/handler"
	"github.com/aayush0444/Cine-Suggest/internal/repository"
	"github.com/aayush0444/Cine-Suggest/internal/service"
	"github.com/aayush0444/Cine-Suggest/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineSuggest API
// @version 1.0
// @description Recomendador de películas por contenido (TF-IDF + coseno, Mongo, Redis)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	movieRepo := repository.NewMovieRepository()
	simRepo := repository.NewSimilarityRepository()
	recRepo := repository.NewRecommendationRepository()

	// ============================================
	// Carga al por mayor de catálogo + matriz.
	// Si las dimensiones no cuadran, no arrancamos.
	// ============================================
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	artifacts, err := repository.LoadArtifacts(ctx, movieRepo, simRepo)
	cancel()
	if err != nil {
		log.Fatalf("[artifacts] %v", err)
	}
	log.Printf("[artifacts] catálogo=%d vocab=%d métrica=%s (generados %s)",
		artifacts.Size(), artifacts.Meta.VocabSize, artifacts.Meta.Metric, artifacts.Meta.UpdatedAt)

	// services
	tmdbClient := tmdb.NewClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)
	metaSvc := service.NewMetadataService(tmdbClient, cfg.TMDBImageBase)
	movieSvc := service.NewMovieService(movieRepo, artifacts)
	recSvc := service.NewRecommendService(artifacts, recRepo)
	adminMaintSvc := service.NewAdminMaintenanceService(movieRepo, simRepo, artifacts)

	// handlers
	movieH := handler.NewMovieHandler(movieSvc, metaSvc)
	recH := handler.NewRecommendHandler(recSvc, metaSvc)
	adminMaintH := handler.NewAdminMaintenanceHandler(adminMaintSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	// Películas
	r.Get("/movies/titles", movieH.Titles)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/{id}/metadata", movieH.GetMetadata)

	// Recomendaciones
	r.Get("/recommend", recH.GetRecommendations)
	r.Post("/recommend/batch", recH.PostBatchRecommendations)
	r.Get("/discover", recH.Discover)

	// WebSocket
	r.Get("/ws/recommend", recH.GetRecommendationsWS)

	// Mantenimiento
	handler.MountAdminMaintenanceRoutes(r, adminMaintH)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
