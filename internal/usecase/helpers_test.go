package usecase

import (
	"context"
	"errors"
	"time"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/internal/domain/repository"
	docRepo "travel-explorer-service/internal/interface/repository"
	"travel-explorer-service/pkg/apperr"
	"travel-explorer-service/pkg/logger"
	"travel-explorer-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

type staticHandle struct {
	store repository.DocumentStore
}

func (h staticHandle) Handle() (repository.DocumentStore, error) {
	if h.store == nil {
		return nil, apperr.ErrStorageUnavailable
	}
	return h.store, nil
}

var errDiskFull = errors.New("disk full")

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) InsertOne(context.Context, string, entity.Document) (interface{}, error) {
	return nil, errDiskFull
}

func (failingStore) Find(context.Context, string, map[string]interface{}, int64) ([]entity.Document, error) {
	return nil, errDiskFull
}

func (failingStore) ListCollections(context.Context) ([]string, error) { return nil, errDiskFull }

func (failingStore) Name() string { return "broken" }

// overflowingStore ignores the limit it is given.
type overflowingStore struct {
	*docRepo.MemoryDocumentRepository
}

func (s overflowingStore) Find(ctx context.Context, collection string, filter map[string]interface{}, _ int64) ([]entity.Document, error) {
	return s.MemoryDocumentRepository.Find(ctx, collection, filter, 0)
}

// tickingClock returns start, start+step, start+2*step, ...
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func newTestGateway(store repository.DocumentStore, now func() time.Time) *DocumentGateway {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	return NewDocumentGateway(staticHandle{store: store}, NewDocumentCodec(now), time.Second, logger.NewNop(), m)
}
