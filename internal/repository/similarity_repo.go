package repository

import (
	"context"
	"fmt"

	"github.com/aayush0444/Cine-Suggest/internal/db"
	"github.com/aayush0444/Cine-Suggest/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MetricCosine = "cosine"

type SimilarityRepository struct {
	rows *mongo.Collection
	meta *mongo.Collection
}

func NewSimilarityRepository() *SimilarityRepository {
	return &SimilarityRepository{
		rows: db.DB().Collection("similarity_rows"),
		meta: db.DB().Collection("similarity_meta"),
	}
}

// LoadRows lee todas las filas de la matriz ordenadas por iIdx.
func (r *SimilarityRepository) LoadRows(ctx context.Context) ([]models.SimilarityRowDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "iIdx", Value: 1}})

	cur, err := r.rows.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SimilarityRowDoc
	for cur.Next(ctx) {
		var row models.SimilarityRowDoc
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, cur.Err()
}

// LoadMeta lee el documento de metadatos de la corrida (_id = "cosine").
// Devuelve nil si todavía no se corrió featurize.
func (r *SimilarityRepository) LoadMeta(ctx context.Context) (*models.SimilarityMetaDoc, error) {
	var meta models.SimilarityMetaDoc
	err := r.meta.FindOne(ctx, bson.M{"_id": MetricCosine}).Decode(&meta)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *SimilarityRepository) CountRows(ctx context.Context) (int64, error) {
	return r.rows.CountDocuments(ctx, bson.M{})
}

// ReplaceAll reescribe filas + meta de una corrida de featurize.
// Catálogo y matriz solo son válidos juntos, por eso featurize llama
// movies.ReplaceAll y sims.ReplaceAll en la misma corrida.
func (r *SimilarityRepository) ReplaceAll(
	ctx context.Context,
	rows []models.SimilarityRowDoc,
	meta *models.SimilarityMetaDoc,
) error {
	if err := r.rows.Drop(ctx); err != nil {
		return err
	}
	if err := r.meta.Drop(ctx); err != nil {
		return err
	}

	// InsertMany por lotes: cada fila pesa n*8 bytes y Mongo limita
	// el tamaño del batch.
	const batch = 100
	for start := 0; start < len(rows); start += batch {
		end := start + batch
		if end > len(rows) {
			end = len(rows)
		}
		docs := make([]any, 0, end-start)
		for _, row := range rows[start:end] {
			docs = append(docs, row)
		}
		if _, err := r.rows.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insertando filas %d..%d: %w", start, end, err)
		}
	}

	_, err := r.meta.InsertOne(ctx, meta)
	return err
}
