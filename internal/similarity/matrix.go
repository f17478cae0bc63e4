package similarity

import (
	"errors"
	"math"

	"github.com/aayush0444/Cine-Suggest/internal/tfidf"
)

// Matrix es la matriz densa y simétrica de similitud coseno.
// Se calcula una vez en cmd/featurize y en el API es de solo lectura.
type Matrix struct {
	rows [][]float64
}

var ErrNotSquare = errors.New("matriz de similitud no cuadrada")

// Compute calcula la matriz completa de similitud coseno entre todos
// los pares de vectores. sim(A,B) = dot(A,B) / (|A|*|B|); si alguno de
// los dos tiene norma cero la similitud es 0 (definida, no NaN). La
// diagonal queda en 1.0 por construcción y los valores se recortan a
// [0,1] para absorber el error de punto flotante.
//
// Una sola pasada síncrona: para catálogos de miles de entradas no
// hace falta paralelizar.
func Compute(vectors []tfidf.Vector) *Matrix {
	n := len(vectors)

	norms := make([]float64, n)
	for i, v := range vectors {
		var sum float64
		for _, w := range v {
			sum += w * w
		}
		norms[i] = math.Sqrt(sum)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		rows[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			s := cosine(vectors[i], vectors[j], norms[i], norms[j])
			rows[i][j] = s
			rows[j][i] = s
		}
	}

	return &Matrix{rows: rows}
}

func cosine(a, b tfidf.Vector, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}

	// iterar sobre el vector más chico
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for id, wa := range a {
		if wb, ok := b[id]; ok {
			dot += wa * wb
		}
	}

	s := dot / (normA * normB)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// FromRows arma una Matrix a partir de filas ya calculadas (las que
// se leen de Mongo). Solo valida que sea cuadrada; la validación de
// dimensión contra el catálogo la hace el repositorio.
func FromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	for _, r := range rows {
		if len(r) != n {
			return nil, ErrNotSquare
		}
	}
	return &Matrix{rows: rows}, nil
}

// Size devuelve n (filas == columnas).
func (m *Matrix) Size() int {
	return len(m.rows)
}

// Row devuelve la fila i. El caller NO debe mutarla.
func (m *Matrix) Row(i int) []float64 {
	return m.rows[i]
}

func (m *Matrix) At(i, j int) float64 {
	return m.rows[i][j]
}

// Rows expone las filas para serializarlas (cmd/featurize).
func (m *Matrix) Rows() [][]float64 {
	return m.rows
}
