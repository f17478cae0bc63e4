package service

import (
	"context"
	"testing"

	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/repository"
	"github.com/aayush0444/Cine-Suggest/internal/similarity"
	"github.com/aayush0444/Cine-Suggest/internal/tfidf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

// arma un ArtifactSet en memoria a partir de pares título/bolsa-de-tags
// (sin Mongo ni Redis: el servicio rankea igual)
func testArtifacts(t *testing.T, entries [][2]string) *repository.ArtifactSet {
	t.Helper()

	movies := make([]models.MovieDoc, len(entries))
	docs := make([]string, len(entries))
	for i, e := range entries {
		movies[i] = models.MovieDoc{
			MovieID: 1000 + i,
			IIdx:    i,
			Title:   e[0],
			Tags:    e[1],
		}
		docs[i] = e[1]
	}

	v := tfidf.NewVectorizer(1000)
	vectors, err := v.FitTransform(docs)
	require.NoError(t, err)

	matrix := similarity.Compute(vectors)

	set, err := repository.NewArtifactSet(movies, matrix, models.SimilarityMetaDoc{
		Metric: repository.MetricCosine,
		Count:  len(movies),
	})
	require.NoError(t, err)
	return set
}

func catalogSeven(t *testing.T) *repository.ArtifactSet {
	return testArtifacts(t, [][2]string{
		{"Avatar", "action sciencefiction alien space marine pandora"},
		{"Titanic", "drama romance ship ocean love disaster"},
		{"Aliens", "action sciencefiction alien space marine colony"},
		{"The Notebook", "drama romance love memory"},
		{"Star Trek", "action sciencefiction space ship alien"},
		{"Interstellar", "sciencefiction space drama wormhole"},
		{"Grown Ups", "comedy friends lake summer"},
	})
}

func TestRecommend_SingleSeedExcludesSeed(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	items, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar"},
		K:      10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, it := range items {
		assert.NotEqual(t, "Avatar", it.Title, "el seed nunca aparece en la salida")
	}
}

func TestRecommend_SortedDescWithIndexTieBreak(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	items, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar"},
		K:      6,
	})
	require.NoError(t, err)

	for i := 1; i < len(items); i++ {
		if items[i-1].Score == items[i].Score {
			assert.Less(t, items[i-1].IIdx, items[i].IIdx, "empate: iIdx ascendente")
		} else {
			assert.Greater(t, items[i-1].Score, items[i].Score)
		}
	}
}

func TestRecommend_KFiveReturnsExactlyFive(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	items, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar"},
		K:      5,
	})
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestRecommend_InvalidK(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	_, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar"},
		K:      0,
	})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestRecommend_UnknownTitle(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	_, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"No Existe"},
		K:      5,
	})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestRecommend_SeedCountLimits(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	_, err := svc.Recommend(context.Background(), RecRequest{K: 5})
	assert.ErrorIs(t, err, ErrInvalidParam, "cero seeds")

	_, err = svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar", "Titanic", "Aliens", "Star Trek", "Interstellar", "Grown Ups"},
		K:      5,
	})
	assert.ErrorIs(t, err, ErrInvalidParam, "más de 5 seeds")
}

func TestRecommend_ThresholdValidation(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	for _, bad := range []float64{-0.1, 1.5} {
		minSim := bad
		_, err := svc.Recommend(context.Background(), RecRequest{
			Titles: []string{"Avatar"},
			K:      5,
			MinSim: &minSim,
		})
		assert.ErrorIs(t, err, ErrInvalidParam, "min_similarity=%v", bad)
	}
}

func TestRecommend_ThresholdFilters(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	minSim := 0.99
	items, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar"},
		K:      10,
		MinSim: &minSim,
	})
	require.NoError(t, err)

	for _, it := range items {
		assert.GreaterOrEqual(t, it.Score, minSim)
	}
}

func TestRecommend_MultiSeedIsMeanOfSingleScores(t *testing.T) {
	set := catalogSeven(t)
	svc := NewRecommendService(set, nil)

	items, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"Avatar", "Titanic"},
		K:      5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, items)

	idxA, _ := set.IndexByTitle("Avatar")
	idxB, _ := set.IndexByTitle("Titanic")

	for _, it := range items {
		want := (set.Matrix.At(idxA, it.IIdx) + set.Matrix.At(idxB, it.IIdx)) / 2
		assert.InDelta(t, want, it.Score, tol)
		assert.NotContains(t, []int{idxA, idxB}, it.IIdx, "los seeds no aparecen como candidatos")
	}
}

func TestRecommend_IdenticalTagBagsAreTiedInCatalogOrder(t *testing.T) {
	// tres bolsas idénticas: matriz de puros 1.0; recomendar A con k=2
	// devuelve las otras dos, empatadas, en orden de catálogo
	set := testArtifacts(t, [][2]string{
		{"A", "action hero space"},
		{"B", "action hero space"},
		{"C", "action hero space"},
	})
	svc := NewRecommendService(set, nil)

	items, err := svc.Recommend(context.Background(), RecRequest{
		Titles: []string{"A"},
		K:      2,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "B", items[0].Title)
	assert.Equal(t, "C", items[1].Title)
	assert.InDelta(t, 1.0, items[0].Score, tol)
	assert.InDelta(t, 1.0, items[1].Score, tol)
}

func TestDiscover_DistinctAndInRange(t *testing.T) {
	set := catalogSeven(t)
	svc := NewRecommendService(set, nil)

	movies, err := svc.Discover(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, movies, 5)

	seen := make(map[int]bool)
	for _, m := range movies {
		assert.False(t, seen[m.IIdx], "índices repetidos")
		seen[m.IIdx] = true
		assert.GreaterOrEqual(t, m.IIdx, 0)
		assert.Less(t, m.IIdx, set.Size())
	}
}

func TestDiscover_CoversCatalogOverTrials(t *testing.T) {
	set := catalogSeven(t)
	svc := NewRecommendService(set, nil)

	counts := make(map[int]int)
	for trial := 0; trial < 200; trial++ {
		movies, err := svc.Discover(context.Background(), 3)
		require.NoError(t, err)
		for _, m := range movies {
			counts[m.IIdx]++
		}
	}

	// con 200 corridas de 3 sobre 7 películas, todas tienen que salir
	for i := 0; i < set.Size(); i++ {
		assert.Greater(t, counts[i], 0, "índice %d nunca salió", i)
	}
}

func TestDiscover_InvalidN(t *testing.T) {
	svc := NewRecommendService(catalogSeven(t), nil)

	_, err := svc.Discover(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = svc.Discover(context.Background(), 100)
	assert.ErrorIs(t, err, ErrInvalidParam)
}
