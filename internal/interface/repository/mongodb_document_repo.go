package repository

import (
	"context"
	"fmt"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDocumentRepository implements DocumentStore on a MongoDB database
type MongoDocumentRepository struct {
	db *mongo.Database
}

// NewMongoDocumentRepository creates a new MongoDB document repository
func NewMongoDocumentRepository(db *mongo.Database) repository.DocumentStore {
	return &MongoDocumentRepository{
		db: db,
	}
}

// InsertOne inserts a document and returns its ObjectID
func (r *MongoDocumentRepository) InsertOne(ctx context.Context, collection string, doc entity.Document) (interface{}, error) {
	result, err := r.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return result.InsertedID, nil
}

// Find finds up to limit documents matching filter, newest first.
// ObjectIDs start with their creation time, so sorting on _id orders by insertion.
func (r *MongoDocumentRepository) Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]entity.Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}

	docs := make([]entity.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, entity.Document(m))
	}
	return docs, nil
}

// ListCollections lists the collection names of the database
func (r *MongoDocumentRepository) ListCollections(ctx context.Context) ([]string, error) {
	return r.db.ListCollectionNames(ctx, bson.D{})
}

// Name returns the database name
func (r *MongoDocumentRepository) Name() string {
	return r.db.Name()
}
