package db

import (
	"context"
	"log"
	"time"

	"github.com/aayush0444/Cine-Suggest/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
}

func DB() *mongo.Database {
	return mongoDB
}

func Close(ctx context.Context) {
	if mongoClient != nil {
		_ = mongoClient.Disconnect(ctx)
	}
}

// EnsureIndexes crea los índices que usan el catálogo y las similitudes.
// Lo llama cmd/featurize después de regenerar los artefactos.
func EnsureIndexes(ctx context.Context) error {
	movieIdx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "iIdx", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "title", Value: 1}},
		},
	}
	if _, err := mongoDB.Collection("movies").Indexes().CreateMany(ctx, movieIdx); err != nil {
		return err
	}

	simIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "iIdx", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := mongoDB.Collection("similarity_rows").Indexes().CreateOne(ctx, simIdx)
	return err
}
