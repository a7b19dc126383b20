package usecase

import (
	"context"
	"time"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/internal/domain/repository"
	"travel-explorer-service/pkg/apperr"
	"travel-explorer-service/pkg/logger"
	"travel-explorer-service/pkg/metrics"
)

// DefaultLimit is used when GetDocuments is called without a positive limit.
const DefaultLimit = 10

// HandleProvider exposes the live document store, or apperr.ErrStorageUnavailable
type HandleProvider interface {
	Handle() (repository.DocumentStore, error)
}

// DocumentGateway is the single entry point from handlers into storage
type DocumentGateway struct {
	handles HandleProvider
	codec   *DocumentCodec
	timeout time.Duration
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewDocumentGateway creates a gateway. timeout bounds each storage call (0 disables it);
// m may be nil.
func NewDocumentGateway(handles HandleProvider, codec *DocumentCodec, timeout time.Duration, log logger.Logger, m *metrics.Metrics) *DocumentGateway {
	if codec == nil {
		codec = NewDocumentCodec(nil)
	}
	return &DocumentGateway{
		handles: handles,
		codec:   codec,
		timeout: timeout,
		logger:  log,
		metrics: m,
	}
}

// CreateDocument normalizes payload, inserts it into collection and returns the new id
func (g *DocumentGateway) CreateDocument(ctx context.Context, collection string, payload interface{}) (string, error) {
	store, err := g.handles.Handle()
	if err != nil {
		g.observe("insert", collection, "unavailable", time.Time{})
		return "", err
	}

	doc, err := g.codec.Normalize(payload)
	if err != nil {
		return "", err
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	id, err := store.InsertOne(ctx, collection, doc)
	if err != nil {
		g.observe("insert", collection, "error", start)
		g.logger.Error("Failed to insert document", "collection", collection, "error", err)
		return "", apperr.Wrap(apperr.KindStorageWrite, "create_document", "failed to insert document", err)
	}
	g.observe("insert", collection, "ok", start)

	docID := StringifyID(id)
	g.logger.Debug("Inserted document", "collection", collection, "id", docID)
	return docID, nil
}

// GetDocuments returns at most limit raw records of collection matching filter
func (g *DocumentGateway) GetDocuments(ctx context.Context, collection string, filter map[string]interface{}, limit int) ([]entity.Document, error) {
	store, err := g.handles.Handle()
	if err != nil {
		g.observe("find", collection, "unavailable", time.Time{})
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	docs, err := store.Find(ctx, collection, filter, int64(limit))
	if err != nil {
		g.observe("find", collection, "error", start)
		g.logger.Error("Failed to query documents", "collection", collection, "error", err)
		return nil, apperr.Wrap(apperr.KindStorageRead, "get_documents", "failed to query documents", err)
	}
	g.observe("find", collection, "ok", start)

	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (g *DocumentGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *DocumentGateway) observe(operation, collection, result string, start time.Time) {
	if g.metrics == nil {
		return
	}
	g.metrics.StorageOperations.WithLabelValues(operation, collection, result).Inc()
	if !start.IsZero() {
		g.metrics.StorageLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
