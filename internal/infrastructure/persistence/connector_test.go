package persistence

import (
	"context"
	"errors"
	"testing"

	"travel-explorer-service/internal/domain/entity"
	docRepo "travel-explorer-service/internal/interface/repository"
	"travel-explorer-service/pkg/apperr"
	"travel-explorer-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeFailingStore struct {
	*docRepo.MemoryDocumentRepository
}

func (probeFailingStore) ListCollections(context.Context) ([]string, error) {
	return nil, errors.New("not authorized on travel to execute command listCollections")
}

func TestConnectWithoutConfigIsUnavailable(t *testing.T) {
	c := NewConnector(logger.NewNop())
	assert.Equal(t, StateUninitialized, c.State())

	err := c.Connect(context.Background(), Options{})
	require.Error(t, err)
	assert.Equal(t, StateUnavailable, c.State())

	_, err = c.Handle()
	assert.ErrorIs(t, err, apperr.ErrStorageUnavailable)

	status := c.Describe(context.Background())
	assert.False(t, status.Available)
	assert.Empty(t, status.DatabaseName)
	assert.NotNil(t, status.Collections)
	assert.Empty(t, status.Collections)
}

func TestConnectRunsOnce(t *testing.T) {
	c := NewConnector(logger.NewNop())
	require.Error(t, c.Connect(context.Background(), Options{}))

	err := c.Connect(context.Background(), Options{URL: "memory://", Name: "travel"})
	require.Error(t, err)
	assert.Equal(t, StateUnavailable, c.State(), "unavailable is terminal")
}

func TestConnectMemoryDriver(t *testing.T) {
	c := NewConnector(logger.NewNop())
	require.NoError(t, c.Connect(context.Background(), Options{URL: "memory://local", Name: "travel"}))
	assert.Equal(t, StateAvailable, c.State())

	store, err := c.Handle()
	require.NoError(t, err)
	_, err = store.InsertOne(context.Background(), "search", entity.Document{"type": "trains"})
	require.NoError(t, err)

	status := c.Describe(context.Background())
	assert.True(t, status.Available)
	assert.Equal(t, "travel", status.DatabaseName)
	assert.Equal(t, []string{"search"}, status.Collections)
	assert.NoError(t, c.Close(context.Background()))
}

func TestConnectUnsupportedDriver(t *testing.T) {
	c := NewConnector(logger.NewNop())
	err := c.Connect(context.Background(), Options{URL: "x", Name: "travel", Driver: "cassandra"})
	require.Error(t, err)
	assert.Equal(t, StateUnavailable, c.State())
}

func TestDescribeProbeFailure(t *testing.T) {
	store := probeFailingStore{docRepo.NewMemoryDocumentRepository("travel")}
	c := NewConnectorWithStore(store, logger.NewNop())

	status := c.Describe(context.Background())
	assert.True(t, status.Available)
	assert.Equal(t, "travel", status.DatabaseName)
	assert.Contains(t, status.ProbeError, "not authorized")
	assert.Empty(t, status.Collections)
}

func TestDriverInference(t *testing.T) {
	cases := map[string]string{
		"mongodb://localhost:27017":        DriverMongo,
		"mongodb+srv://cluster.example":    DriverMongo,
		"postgres://user@localhost/travel": DriverPostgres,
		"postgresql://localhost/travel":    DriverPostgres,
		"memory://":                        DriverMemory,
	}
	for url, want := range cases {
		assert.Equal(t, want, driverFor(Options{URL: url}), url)
	}
	assert.Equal(t, DriverMemory, driverFor(Options{URL: "mongodb://x", Driver: "MEMORY"}))
}
