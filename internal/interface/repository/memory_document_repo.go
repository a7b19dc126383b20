package repository

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDocumentRepository keeps documents in process memory.
// Ids are ObjectIDs so callers see the same id shape as with MongoDB.
type MemoryDocumentRepository struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]entity.Document
}

// NewMemoryDocumentRepository creates an empty in-memory document store
func NewMemoryDocumentRepository(name string) *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		name:        name,
		collections: make(map[string][]entity.Document),
	}
}

var _ repository.DocumentStore = (*MemoryDocumentRepository)(nil)

// InsertOne stores a copy of doc
func (r *MemoryDocumentRepository) InsertOne(ctx context.Context, collection string, doc entity.Document) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := doc.Copy()
	id, ok := stored[entity.FieldID]
	if !ok {
		id = primitive.NewObjectID()
		stored[entity.FieldID] = id
	}

	r.mu.Lock()
	r.collections[collection] = append(r.collections[collection], stored)
	r.mu.Unlock()

	return id, nil
}

// Find returns copies of up to limit documents whose fields equal filter's, newest first
func (r *MemoryDocumentRepository) Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.collections[collection]
	docs := make([]entity.Document, 0)
	for i := len(stored) - 1; i >= 0; i-- {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if matches(stored[i], filter) {
			docs = append(docs, stored[i].Copy())
		}
	}
	return docs, nil
}

func matches(doc entity.Document, filter map[string]interface{}) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// ListCollections lists collection names in sorted order
func (r *MemoryDocumentRepository) ListCollections(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Name returns the store name
func (r *MemoryDocumentRepository) Name() string {
	return r.name
}
