package models

// SimilarityRowDoc es una fila de la matriz de similitud en MongoDB.
// scores[j] = cosine(vector[iIdx], vector[j]); len(scores) == n.
type SimilarityRowDoc struct {
	ID        string    `json:"_id" bson:"_id"`
	IIdx      int       `json:"iIdx" bson:"iIdx"`
	MovieID   int       `json:"movieId" bson:"movieId"`
	Scores    []float64 `json:"scores" bson:"scores"`
	UpdatedAt string    `json:"updatedAt" bson:"updatedAt"`
}

// SimilarityMetaDoc describe la corrida que generó la matriz.
// Catálogo y matriz solo son válidos juntos: Count tiene que
// coincidir con el tamaño del catálogo y de cada fila.
type SimilarityMetaDoc struct {
	ID          string `json:"_id" bson:"_id"`
	Metric      string `json:"metric" bson:"metric"`
	Count       int    `json:"count" bson:"count"`
	VocabSize   int    `json:"vocabSize" bson:"vocabSize"`
	MaxFeatures int    `json:"maxFeatures" bson:"maxFeatures"`
	TopCast     int    `json:"topCast" bson:"topCast"`
	UpdatedAt   string `json:"updatedAt" bson:"updatedAt"`
}
