package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aayush0444/Cine-Suggest/internal/cache"
	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/repository"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems
	MaxSeeds = 5
)

var (
	// ErrMovieNotFound: el título seed no está en el catálogo.
	ErrMovieNotFound = errors.New("película no encontrada en el catálogo")
	// ErrInvalidParam: k, umbral o cantidad de seeds fuera de rango.
	ErrInvalidParam = errors.New("parámetro inválido")
)

// RecommendService rankea sobre los artefactos precalculados.
// No recalcula nada online: una consulta es leer filas de la matriz,
// ordenar y cortar en K. Los artefactos son de solo lectura, así que
// no hace falta ningún lock acá.
type RecommendService struct {
	artifacts *repository.ArtifactSet
	recRepo   *repository.RecommendationRepository // puede ser nil (tests)

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRecommendService(
	artifacts *repository.ArtifactSet,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		artifacts: artifacts,
		recRepo:   recRepo,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	// Titles: 1 seed = modo simple, 2..5 = modo multi-seed (promedio).
	Titles []string
	K      int
	// MinSim: umbral opcional en [0,1]; candidatos por debajo se descartan.
	MinSim *float64
}

func cacheKey(req RecRequest) string {
	seeds := make([]string, len(req.Titles))
	for i, t := range req.Titles {
		seeds[i] = repository.NormalizeTitle(t)
	}
	sort.Strings(seeds)

	minSim := "-"
	if req.MinSim != nil {
		minSim = fmt.Sprintf("%.4f", *req.MinSim)
	}
	return fmt.Sprintf("rec:%s:k:%d:min:%s", strings.Join(seeds, "|"), req.K, minSim)
}

// Recommend devuelve los top-K más similares a los seeds.
//
// Modo simple: fila i de la matriz, excluyendo i.
// Modo multi-seed: promedio aritmético de las filas de cada seed,
// excluyendo el set completo de seeds.
// Orden: score descendente; empates por iIdx ascendente (determinista).
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	if req.K <= 0 {
		return nil, fmt.Errorf("%w: k debe ser mayor que 0 (k=%d)", ErrInvalidParam, req.K)
	}
	if req.K > MaxK {
		req.K = MaxK
	}
	if len(req.Titles) == 0 {
		return nil, fmt.Errorf("%w: se necesita al menos un título seed", ErrInvalidParam)
	}
	if len(req.Titles) > MaxSeeds {
		return nil, fmt.Errorf("%w: máximo %d seeds (recibidos %d)", ErrInvalidParam, MaxSeeds, len(req.Titles))
	}
	if req.MinSim != nil && (*req.MinSim < 0 || *req.MinSim > 1) {
		return nil, fmt.Errorf("%w: min_similarity fuera de [0,1] (%.4f)", ErrInvalidParam, *req.MinSim)
	}

	// 1) Cache Redis
	var cached []models.RecItem
	if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
		return cached, nil
	}

	// 2) Resolver seeds a índices del catálogo
	seedSet := make(map[int]bool, len(req.Titles))
	seedIdx := make([]int, 0, len(req.Titles))
	for _, title := range req.Titles {
		idx, ok := s.artifacts.IndexByTitle(title)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, title)
		}
		if !seedSet[idx] {
			seedSet[idx] = true
			seedIdx = append(seedIdx, idx)
		}
	}

	// 3) Score por candidato: fila única o promedio de filas
	n := s.artifacts.Size()
	scores := make([]float64, n)
	for _, si := range seedIdx {
		row := s.artifacts.Matrix.Row(si)
		for j := 0; j < n; j++ {
			scores[j] += row[j]
		}
	}
	if len(seedIdx) > 1 {
		div := float64(len(seedIdx))
		for j := 0; j < n; j++ {
			scores[j] /= div
		}
	}

	// 4) Ranking: excluir seeds, aplicar umbral, ordenar, cortar en K
	candidates := make([]int, 0, n-len(seedIdx))
	for j := 0; j < n; j++ {
		if seedSet[j] {
			continue
		}
		if req.MinSim != nil && scores[j] < *req.MinSim {
			continue
		}
		candidates = append(candidates, j)
	}

	sort.Slice(candidates, func(a, b int) bool {
		if scores[candidates[a]] != scores[candidates[b]] {
			return scores[candidates[a]] > scores[candidates[b]]
		}
		return candidates[a] < candidates[b]
	})
	if len(candidates) > req.K {
		candidates = candidates[:req.K]
	}

	items := make([]models.RecItem, 0, len(candidates))
	for _, j := range candidates {
		m := s.artifacts.Movies[j]
		items = append(items, models.RecItem{
			MovieID: m.MovieID,
			IIdx:    j,
			Title:   m.Title,
			Score:   scores[j],
		})
	}

	// 5) Historial en Mongo (best effort, no rompe la respuesta)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			Seeds:            req.Titles,
			Algo:             "tfidf-content",
			SimilarityMetric: repository.MetricCosine,
			Params: map[string]any{
				"k":      req.K,
				"seeds":  len(seedIdx),
				"minSim": req.MinSim,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 6) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// ====== Discover: muestreo aleatorio, SIN mirar la matriz ======

// Discover devuelve n películas distintas muestreadas uniformemente
// del catálogo. Es aleatorio puro (modo "descubrir" de la UI), nunca
// se cachea y no consulta similitudes.
func (s *RecommendService) Discover(ctx context.Context, n int) ([]models.MovieDoc, error) {
	size := s.artifacts.Size()

	if n <= 0 {
		return nil, fmt.Errorf("%w: n debe ser mayor que 0 (n=%d)", ErrInvalidParam, n)
	}
	if n > size {
		return nil, fmt.Errorf("%w: n=%d supera el tamaño del catálogo (%d)", ErrInvalidParam, n, size)
	}

	s.mu.Lock()
	perm := s.rng.Perm(size)
	s.mu.Unlock()

	out := make([]models.MovieDoc, n)
	for i := 0; i < n; i++ {
		out[i] = s.artifacts.Movies[perm[i]]
	}
	return out, nil
}
