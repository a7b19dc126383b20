package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentStore on PostgreSQL, one jsonb row per document
type GormDocumentRepository struct {
	db   *gorm.DB
	name string
}

// Documents GORM model for database mapping
type Documents struct {
	Seq        uint      `gorm:"primaryKey;autoIncrement"`
	DocID      string    `gorm:"column:doc_id;type:uuid;uniqueIndex"`
	Collection string    `gorm:"column:collection;index"`
	Body       []byte    `gorm:"column:body;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (Documents) TableName() string {
	return "documents"
}

// NewGormDocumentRepository creates a new GORM document repository.
// The documents table is created if missing.
func NewGormDocumentRepository(db *gorm.DB, name string) (repository.DocumentStore, error) {
	if err := db.AutoMigrate(&Documents{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &GormDocumentRepository{
		db:   db,
		name: name,
	}, nil
}

// InsertOne stores a document and returns its uuid string
func (r *GormDocumentRepository) InsertOne(ctx context.Context, collection string, doc entity.Document) (interface{}, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	row := Documents{
		DocID:      uuid.NewString(),
		Collection: collection,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
	if t, ok := doc[entity.FieldCreatedAt].(time.Time); ok {
		row.CreatedAt = t
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return row.DocID, nil
}

// Find returns up to limit documents whose body contains filter, newest first
func (r *GormDocumentRepository) Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64) ([]entity.Document, error) {
	query := r.db.WithContext(ctx).Where("collection = ?", collection)
	if len(filter) > 0 {
		f, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		query = query.Where("body @> ?::jsonb", string(f))
	}
	if limit > 0 {
		query = query.Limit(int(limit))
	}

	var rows []Documents
	if err := query.Order("seq DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}

	docs := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		doc := entity.Document{}
		if err := json.Unmarshal(row.Body, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", row.DocID, err)
		}
		doc[entity.FieldID] = row.DocID
		doc[entity.FieldCreatedAt] = row.CreatedAt
		docs = append(docs, doc)
	}
	return docs, nil
}

// ListCollections lists the distinct collections holding at least one document
func (r *GormDocumentRepository) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&Documents{}).Distinct("collection").Order("collection").Pluck("collection", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Name returns the database name
func (r *GormDocumentRepository) Name() string {
	return r.name
}
