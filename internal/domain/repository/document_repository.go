package repository

import (
	"context"

	"travel-explorer-service/internal/domain/entity"
)

// DocumentStore defines the schema-less storage operations the gateway depends on
type DocumentStore interface {
	// InsertOne stores doc in collection and returns the storage-native id.
	InsertOne(ctx context.Context, collection string, doc entity.Document) (interface{}, error)
	// Find returns at most limit documents matching filter, most recently inserted
	// first. An empty filter matches all.
	Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]entity.Document, error)
	ListCollections(ctx context.Context) ([]string, error)
	// Name is the database name the store is bound to.
	Name() string
}
