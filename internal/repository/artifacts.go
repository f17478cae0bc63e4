package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aayush0444/Cine-Suggest/internal/models"
	"github.com/aayush0444/Cine-Suggest/internal/similarity"
)

// ErrCorruptArtifact: catálogo y matriz no coinciden (o faltan).
// Los dos artefactos solo son válidos juntos; si las dimensiones no
// cuadran el API no debe arrancar.
var ErrCorruptArtifact = errors.New("artefactos corruptos")

// ArtifactSet es el par catálogo + matriz cargado en memoria.
// Se construye una vez al arrancar y es de solo lectura durante toda
// la vida del proceso; nadie lo muta después de NewArtifactSet.
type ArtifactSet struct {
	Movies []models.MovieDoc
	Matrix *similarity.Matrix
	Meta   models.SimilarityMetaDoc

	titleIdx map[string]int // título normalizado -> iIdx
}

// NewArtifactSet valida dimensiones y arma el índice por título.
// Regla: len(catálogo) == filas == columnas, iIdx contiguos 0..n-1.
func NewArtifactSet(
	movies []models.MovieDoc,
	matrix *similarity.Matrix,
	meta models.SimilarityMetaDoc,
) (*ArtifactSet, error) {
	n := len(movies)

	if matrix.Size() != n {
		return nil, fmt.Errorf("%w: catálogo=%d filas=%d", ErrCorruptArtifact, n, matrix.Size())
	}
	if meta.Count != 0 && meta.Count != n {
		return nil, fmt.Errorf("%w: meta.count=%d catálogo=%d", ErrCorruptArtifact, meta.Count, n)
	}

	titleIdx := make(map[string]int, n)
	for i, m := range movies {
		if m.IIdx != i {
			return nil, fmt.Errorf("%w: iIdx no contiguo en posición %d (iIdx=%d)", ErrCorruptArtifact, i, m.IIdx)
		}
		key := NormalizeTitle(m.Title)
		// con títulos duplicados gana la primera aparición
		if _, ok := titleIdx[key]; !ok {
			titleIdx[key] = i
		}
	}

	return &ArtifactSet{
		Movies:   movies,
		Matrix:   matrix,
		Meta:     meta,
		titleIdx: titleIdx,
	}, nil
}

// IndexByTitle resuelve un título a su iIdx (match exacto,
// insensible a mayúsculas y espacios en los bordes).
func (a *ArtifactSet) IndexByTitle(title string) (int, bool) {
	idx, ok := a.titleIdx[NormalizeTitle(title)]
	return idx, ok
}

func (a *ArtifactSet) Size() int {
	return len(a.Movies)
}

func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// LoadArtifacts carga catálogo + matriz desde Mongo y los valida.
// Es la única forma en que el API obtiene los artefactos: al por
// mayor, nunca fila por fila en el camino de servicio.
func LoadArtifacts(
	ctx context.Context,
	movies *MovieRepository,
	sims *SimilarityRepository,
) (*ArtifactSet, error) {
	catalog, err := movies.GetAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: catálogo vacío (¿corriste cmd/featurize?)", ErrCorruptArtifact)
	}

	rowDocs, err := sims.LoadRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(rowDocs) != len(catalog) {
		return nil, fmt.Errorf("%w: catálogo=%d filas=%d", ErrCorruptArtifact, len(catalog), len(rowDocs))
	}

	rows := make([][]float64, len(rowDocs))
	for i, doc := range rowDocs {
		if doc.IIdx != i {
			return nil, fmt.Errorf("%w: fila %d tiene iIdx=%d", ErrCorruptArtifact, i, doc.IIdx)
		}
		if len(doc.Scores) != len(catalog) {
			return nil, fmt.Errorf("%w: fila %d con %d columnas (esperadas %d)", ErrCorruptArtifact, i, len(doc.Scores), len(catalog))
		}
		rows[i] = doc.Scores
	}

	matrix, err := similarity.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}

	meta, err := sims.LoadMeta(ctx)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: falta similarity_meta", ErrCorruptArtifact)
	}

	return NewArtifactSet(catalog, matrix, *meta)
}
