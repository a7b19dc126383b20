package usecase

import (
	"context"
	"testing"
	"time"

	"travel-explorer-service/internal/domain/entity"
	docRepo "travel-explorer-service/internal/interface/repository"
	"travel-explorer-service/pkg/apperr"
	"travel-explorer-service/pkg/logger"
	"travel-explorer-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearchService(gw *DocumentGateway) (*SearchService, *metrics.Metrics) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	return NewSearchService(gw, logger.NewNop(), m), m
}

func TestSearchFlights(t *testing.T) {
	store := docRepo.NewMemoryDocumentRepository("travel")
	svc, _ := newTestSearchService(newTestGateway(store, nil))

	flights := svc.SearchFlights(context.Background(), "lax", "jfk", "2024-05-01")
	require.Len(t, flights, 3)

	wantPrices := []float64{99.0, 114.0, 89.0}
	wantAirlines := []string{"SkyJet", "AeroWings", "CloudAir"}
	for i, f := range flights {
		assert.Equal(t, "LAX", f.Origin)
		assert.Equal(t, "JFK", f.Destination)
		assert.Equal(t, wantPrices[i], f.Price)
		assert.Equal(t, wantAirlines[i], f.Airline)
	}
	assert.Equal(t, "2024-05-01T06:30", flights[0].DepartTime)
	assert.Equal(t, "2024-05-01T22:25", flights[2].ArriveTime)

	docs, err := store.Find(context.Background(), entity.SearchCollection, nil, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "flights", docs[0]["type"])
	assert.Equal(t, "lax", docs[0]["origin"], "logged parameters keep their original case")
	assert.Equal(t, "jfk", docs[0]["destination"])
	assert.Equal(t, "2024-05-01", docs[0]["date"])
	assert.IsType(t, time.Time{}, docs[0]["created_at"])
}

func TestSearchHotels(t *testing.T) {
	store := docRepo.NewMemoryDocumentRepository("travel")
	svc, _ := newTestSearchService(newTestGateway(store, nil))

	hotels := svc.SearchHotels(context.Background(), "paris", "2024-06-01", "2024-06-05")
	require.Len(t, hotels, 3)
	for _, h := range hotels {
		assert.Equal(t, "Paris", h.Location)
		require.NotNil(t, h.Image)
	}
	assert.Equal(t, 129.0, hotels[0].PricePerNight)
	assert.Equal(t, 4.8, hotels[2].Rating)

	docs, err := store.Find(context.Background(), entity.SearchCollection, map[string]interface{}{"type": "hotels"}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "paris", docs[0]["city"])
	assert.NotContains(t, docs[0], "origin")
}

func TestSearchTrains(t *testing.T) {
	svc, _ := newTestSearchService(newTestGateway(docRepo.NewMemoryDocumentRepository("travel"), nil))

	trains := svc.SearchTrains(context.Background(), "ber", "muc", "2024-07-01")
	require.Len(t, trains, 2)
	assert.Equal(t, "EX123", trains[0].TrainNumber)
	assert.Equal(t, 24.0, trains[0].Price)
	assert.Equal(t, 27.5, trains[1].Price)
	assert.Equal(t, "BER", trains[1].Origin)
	assert.Equal(t, "MUC", trains[1].Destination)
}

func TestSearchesSwallowPersistenceFailures(t *testing.T) {
	for name, gw := range map[string]*DocumentGateway{
		"unavailable": newTestGateway(nil, nil),
		"failing":     newTestGateway(failingStore{}, nil),
	} {
		t.Run(name, func(t *testing.T) {
			svc, m := newTestSearchService(gw)
			ctx := context.Background()

			assert.Len(t, svc.SearchFlights(ctx, "lax", "jfk", "2024-05-01"), 3)
			assert.Len(t, svc.SearchHotels(ctx, "paris", "2024-06-01", "2024-06-05"), 3)
			assert.Len(t, svc.SearchTrains(ctx, "ber", "muc", "2024-07-01"), 2)

			assert.Equal(t, 1.0, testutil.ToFloat64(m.BestEffortDropped.WithLabelValues("flights")))
			assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesServed.WithLabelValues("trains")))
		})
	}
}

func TestLogSearchSurfacesFailures(t *testing.T) {
	svc, _ := newTestSearchService(newTestGateway(nil, nil))
	_, err := svc.LogSearch(context.Background(), entity.SearchQuery{Type: entity.SearchFlights})
	assert.ErrorIs(t, err, apperr.ErrStorageUnavailable)

	svc, _ = newTestSearchService(newTestGateway(failingStore{}, nil))
	_, err = svc.LogSearch(context.Background(), entity.SearchQuery{Type: entity.SearchFlights})
	assert.ErrorIs(t, err, apperr.ErrStorageWrite)

	_, err = svc.RecentSearches(context.Background(), 10)
	assert.ErrorIs(t, err, apperr.ErrStorageRead)
}

func TestRecentSearchesNewestFirst(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	store := docRepo.NewMemoryDocumentRepository("travel")
	svc, _ := newTestSearchService(newTestGateway(store, tickingClock(start, time.Second)))
	ctx := context.Background()

	first, err := svc.LogSearch(ctx, entity.SearchQuery{Type: entity.SearchFlights, Origin: "a"})
	require.NoError(t, err)
	svc.SearchHotels(ctx, "rome", "2024-06-01", "2024-06-02")
	last, err := svc.LogSearch(ctx, entity.SearchQuery{Type: entity.SearchTrains, Origin: "c"})
	require.NoError(t, err)

	items, err := svc.RecentSearches(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, last, items[0]["_id"])
	assert.Equal(t, "hotels", items[1]["type"])
	assert.Equal(t, first, items[2]["_id"])
	assert.Equal(t, "2024-05-01T08:00:02.000000Z", items[0]["created_at"])
}
