package tfidf

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/aayush0444/Cine-Suggest/internal/feature"
)

// Vector es un vector TF-IDF disperso: termID -> peso.
type Vector map[int]float64

var ErrNotFitted = errors.New("vectorizer sin ajustar: llamar Fit primero")
var ErrAlreadyFitted = errors.New("vectorizer ya ajustado: el vocabulario se fija una sola vez")

// Vectorizer mapea bolsas de tags a vectores TF-IDF con vocabulario
// acotado a MaxFeatures términos y stop words excluidas.
//
// El vocabulario se ajusta UNA vez sobre el corpus completo (Fit) y
// después solo se transforma con esos pesos; no hay re-fit online.
type Vectorizer struct {
	MaxFeatures int

	vocab  map[string]int // término -> id
	idf    []float64      // por id de término
	nDocs  int
	fitted bool
}

const DefaultMaxFeatures = 5000

func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// Fit construye el vocabulario (los MaxFeatures términos más frecuentes
// del corpus, empate por orden alfabético para que sea determinista)
// y calcula el IDF suavizado: ln((1+n)/(1+df)) + 1.
func (v *Vectorizer) Fit(docs []string) error {
	if v.fitted {
		return ErrAlreadyFitted
	}

	totalCount := make(map[string]int) // frecuencia total en el corpus
	docFreq := make(map[string]int)    // en cuántos docs aparece

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokens(doc) {
			totalCount[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(totalCount))
	for t := range totalCount {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCount[terms[i]] != totalCount[terms[j]] {
			return totalCount[terms[i]] > totalCount[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	v.nDocs = len(docs)

	for id, t := range terms {
		v.vocab[t] = id
		v.idf[id] = math.Log(float64(1+v.nDocs)/float64(1+docFreq[t])) + 1
	}

	v.fitted = true
	return nil
}

// Transform vectoriza un documento con el vocabulario ya ajustado.
// Términos fuera del vocabulario se ignoran.
func (v *Vectorizer) Transform(doc string) (Vector, error) {
	if !v.fitted {
		return nil, ErrNotFitted
	}

	tf := make(map[int]int)
	for _, tok := range tokens(doc) {
		if id, ok := v.vocab[tok]; ok {
			tf[id]++
		}
	}

	vec := make(Vector, len(tf))
	for id, count := range tf {
		vec[id] = float64(count) * v.idf[id]
	}
	return vec, nil
}

// FitTransform ajusta el vocabulario y vectoriza el corpus completo.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	out := make([]Vector, len(docs))
	for i, doc := range docs {
		vec, err := v.Transform(doc)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (v *Vectorizer) VocabSize() int {
	return len(v.vocab)
}

// tokens parte un doc ya normalizado por el composer; el filtro de
// stop words se repite acá por si llega texto sin pasar por feature.
func tokens(doc string) []string {
	fields := strings.Fields(doc)
	out := fields[:0]
	for _, f := range fields {
		if feature.IsStopWord(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
