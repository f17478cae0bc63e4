package repository

import (
	"testing"

	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/similarity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix(t *testing.T, n int) *similarity.Matrix {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1.0
	}
	m, err := similarity.FromRows(rows)
	require.NoError(t, err)
	return m
}

func testMovies(titles ...string) []models.MovieDoc {
	out := make([]models.MovieDoc, len(titles))
	for i, title := range titles {
		out[i] = models.MovieDoc{MovieID: 100 + i, IIdx: i, Title: title}
	}
	return out
}

func TestNewArtifactSet_OK(t *testing.T) {
	movies := testMovies("Avatar", "Titanic")
	set, err := NewArtifactSet(movies, testMatrix(t, 2), models.SimilarityMetaDoc{Count: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, set.Size())

	idx, ok := set.IndexByTitle("avatar")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = set.IndexByTitle("  TITANIC  ")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = set.IndexByTitle("Inception")
	assert.False(t, ok)
}

func TestNewArtifactSet_DimensionMismatch(t *testing.T) {
	movies := testMovies("Avatar", "Titanic", "Inception")

	_, err := NewArtifactSet(movies, testMatrix(t, 2), models.SimilarityMetaDoc{})
	assert.ErrorIs(t, err, ErrCorruptArtifact)
}

func TestNewArtifactSet_MetaCountMismatch(t *testing.T) {
	movies := testMovies("Avatar", "Titanic")

	_, err := NewArtifactSet(movies, testMatrix(t, 2), models.SimilarityMetaDoc{Count: 5})
	assert.ErrorIs(t, err, ErrCorruptArtifact)
}

func TestNewArtifactSet_NonContiguousIdx(t *testing.T) {
	movies := testMovies("Avatar", "Titanic")
	movies[1].IIdx = 7

	_, err := NewArtifactSet(movies, testMatrix(t, 2), models.SimilarityMetaDoc{})
	assert.ErrorIs(t, err, ErrCorruptArtifact)
}

func TestNewArtifactSet_DuplicateTitleFirstWins(t *testing.T) {
	movies := testMovies("Avatar", "Avatar")
	set, err := NewArtifactSet(movies, testMatrix(t, 2), models.SimilarityMetaDoc{})
	require.NoError(t, err)

	idx, ok := set.IndexByTitle("Avatar")
	assert.True(t, ok)
	assert.Equal(t, 0, idx, "con títulos duplicados gana la primera aparición")
}
