package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecItem es un resultado individual de recomendación.
type RecItem struct {
	MovieID int     `bson:"movieId" json:"movieId"`
	IIdx    int     `bson:"iIdx"    json:"iIdx"`
	Title   string  `bson:"title"   json:"title"`
	Score   float64 `bson:"score"   json:"score"`
	// Metadata opcional (solo si se pidió enrich=true).
	Metadata *Metadata `bson:"-" json:"metadata,omitempty"`
}

// Recommendation es el historial que se guarda en Mongo por cada
// consulta atendida (best effort, no rompe la respuesta si falla).
type Recommendation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"    json:"id"`
	Seeds            []string           `bson:"seeds"            json:"seeds"`
	Algo             string             `bson:"algo"             json:"algo"`
	SimilarityMetric string             `bson:"similarityMetric" json:"similarityMetric"`
	Params           any                `bson:"params"           json:"params"`
	Items            []RecItem          `bson:"items"            json:"items"`
	CreatedAt        time.Time          `bson:"createdAt"        json:"createdAt"`
}

// AdminArtifactSummary es la respuesta de /admin/artifacts/summary:
// compara lo que hay en Mongo contra lo que el proceso cargó en memoria.
type AdminArtifactSummary struct {
	MoviesInMongo   int64  `json:"moviesInMongo"`
	RowsInMongo     int64  `json:"rowsInMongo"`
	MoviesLoaded    int    `json:"moviesLoaded"`
	Metric          string `json:"metric"`
	VocabSize       int    `json:"vocabSize"`
	MaxFeatures     int    `json:"maxFeatures"`
	ArtifactUpdated string `json:"artifactUpdated"`
}
