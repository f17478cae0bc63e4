package tfidf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_FitOnce(t *testing.T) {
	v := NewVectorizer(100)

	require.NoError(t, v.Fit([]string{"action hero", "action drama"}))
	assert.ErrorIs(t, v.Fit([]string{"otro corpus"}), ErrAlreadyFitted)
}

func TestVectorizer_TransformRequiresFit(t *testing.T) {
	v := NewVectorizer(100)

	_, err := v.Transform("action hero")
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestVectorizer_VocabCap(t *testing.T) {
	// corpus con 4 términos distintos, tope en 2: se quedan los dos
	// más frecuentes
	docs := []string{
		"alpha alpha alpha beta beta gamma",
		"alpha beta delta",
	}

	v := NewVectorizer(2)
	vectors, err := v.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, 2, v.VocabSize())
	// gamma y delta quedaron fuera del vocabulario
	for _, vec := range vectors {
		assert.LessOrEqual(t, len(vec), 2)
	}
}

func TestVectorizer_RareTermWeighsMore(t *testing.T) {
	// "common" aparece en todos los docs, "rare" en uno solo:
	// a igual TF, el término raro tiene que pesar más
	docs := []string{
		"common rare",
		"common filler",
		"common filler2",
	}

	v := NewVectorizer(100)
	vectors, err := v.FitTransform(docs)
	require.NoError(t, err)

	// resolver ids vía Transform de docs de un solo término
	var commonID, rareID int
	commonVec, err := v.Transform("common")
	require.NoError(t, err)
	rareVec, err := v.Transform("rare")
	require.NoError(t, err)
	require.Len(t, commonVec, 1)
	require.Len(t, rareVec, 1)

	for id := range commonVec {
		commonID = id
	}
	for id := range rareVec {
		rareID = id
	}

	assert.Greater(t, vectors[0][rareID], vectors[0][commonID])
}

func TestVectorizer_UnknownTermsIgnored(t *testing.T) {
	v := NewVectorizer(100)
	require.NoError(t, v.Fit([]string{"action hero"}))

	vec, err := v.Transform("termino desconocido")
	require.NoError(t, err)
	assert.Empty(t, vec)
}

func TestVectorizer_StopWordsExcluded(t *testing.T) {
	v := NewVectorizer(100)
	require.NoError(t, v.Fit([]string{"the hero and the villain"}))

	vec, err := v.Transform("the and")
	require.NoError(t, err)
	assert.Empty(t, vec, "stop words no entran al vocabulario")
}

func TestVectorizer_StableVocabulary(t *testing.T) {
	docs := []string{"zeta alpha", "zeta alpha", "beta"}

	a := NewVectorizer(10)
	b := NewVectorizer(10)
	va, err := a.FitTransform(docs)
	require.NoError(t, err)
	vb, err := b.FitTransform(docs)
	require.NoError(t, err)

	assert.Equal(t, va, vb, "mismo corpus => mismos ids y pesos")
}
