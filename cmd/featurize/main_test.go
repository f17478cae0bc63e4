package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNames(t *testing.T) {
	names := parseNames(`[{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}]`)
	assert.Equal(t, []string{"Action", "Science Fiction"}, names)

	assert.Nil(t, parseNames("no es json"))
	assert.Empty(t, parseNames("[]"))
}

func TestLoadMoviesCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.csv")

	csvData := `id,title,genres,keywords,overview,release_date
19995,Avatar,"[{""id"": 28, ""name"": ""Action""}]","[{""id"": 1, ""name"": ""alien""}]",A marine on Pandora.,2009-12-10
597,Titanic,"[{""id"": 18, ""name"": ""Drama""}]","[{""id"": 2, ""name"": ""ship""}]",A doomed romance.,1997-11-18
bad,Broken,x,y,z,
`
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	raws, err := loadMoviesCSV(path)
	require.NoError(t, err)
	require.Len(t, raws, 2, "la fila con id inválido se salta")

	assert.Equal(t, 19995, raws[0].MovieID)
	assert.Equal(t, "Avatar", raws[0].Title)
	assert.Equal(t, []string{"Action"}, raws[0].Genres)
	assert.Equal(t, []string{"alien"}, raws[0].Keywords)
	require.NotNil(t, raws[0].Year)
	assert.Equal(t, 2009, *raws[0].Year)
}

func TestLoadCreditsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credits.csv")

	csvData := `movie_id,title,cast,crew
19995,Avatar,"[{""name"": ""Sam Worthington"", ""order"": 0}, {""name"": ""Zoe Saldana"", ""order"": 1}]","[{""name"": ""James Cameron"", ""job"": ""Director""}, {""name"": ""Otro"", ""job"": ""Editor""}]"
`
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o644))

	credits, err := loadCreditsCSV(path)
	require.NoError(t, err)

	cr, ok := credits[19995]
	require.True(t, ok)
	assert.Equal(t, []string{"Sam Worthington", "Zoe Saldana"}, cr.Cast)
	assert.Equal(t, "James Cameron", cr.Director)
}

func TestBuildCatalog(t *testing.T) {
	raws := []rawMovie{
		{MovieID: 1, Title: "Uno", Genres: []string{"Action"}, Overview: "hero saves city"},
		{MovieID: 2, Title: "Dos", Genres: []string{"Drama"}, Overview: "love and loss"},
		{MovieID: 1, Title: "Uno otra vez"}, // duplicado: se salta
	}
	credits := map[int]rawCredits{
		1: {Cast: []string{"A", "B", "C", "D"}, Director: "Dir"},
	}

	catalog, docs := buildCatalog(raws, credits, 3, 0)
	require.Len(t, catalog, 2)
	require.Len(t, docs, 2)

	// iIdx == posición: esa es la clave que une catálogo y matriz
	for i, m := range catalog {
		assert.Equal(t, i, m.IIdx)
	}

	assert.Len(t, catalog[0].Cast, 3, "top cast recortado")
	assert.Equal(t, catalog[0].Tags, docs[0])
	assert.NotEmpty(t, catalog[0].Tags)
}

func TestBuildCatalog_Limit(t *testing.T) {
	raws := []rawMovie{
		{MovieID: 1, Title: "Uno"},
		{MovieID: 2, Title: "Dos"},
		{MovieID: 3, Title: "Tres"},
	}

	catalog, docs := buildCatalog(raws, nil, 3, 2)
	assert.Len(t, catalog, 2)
	assert.Len(t, docs, 2)
}
