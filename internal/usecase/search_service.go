package usecase

import (
	"context"
	"strings"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/pkg/logger"
	"travel-explorer-service/pkg/metrics"
	"travel-explorer-service/pkg/utils"
)

const flightBasePrice = 79.0

// SearchService serves the mock travel searches and the search log
type SearchService struct {
	gateway *DocumentGateway
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewSearchService creates a new search service; m may be nil
func NewSearchService(gateway *DocumentGateway, log logger.Logger, m *metrics.Metrics) *SearchService {
	return &SearchService{
		gateway: gateway,
		logger:  log,
		metrics: m,
	}
}

// SearchFlights returns the fixed flight table for the route and logs the search
func (s *SearchService) SearchFlights(ctx context.Context, origin, destination, date string) []entity.FlightOption {
	from, to := strings.ToUpper(origin), strings.ToUpper(destination)

	flights := []entity.FlightOption{
		{
			Airline:      "SkyJet",
			FlightNumber: "SJ201",
			DepartTime:   date + "T06:30",
			ArriveTime:   date + "T09:05",
			Duration:     "2h 35m",
			Price:        flightBasePrice + 20,
			Origin:       from,
			Destination:  to,
		},
		{
			Airline:      "AeroWings",
			FlightNumber: "AW318",
			DepartTime:   date + "T10:15",
			ArriveTime:   date + "T12:55",
			Duration:     "2h 40m",
			Price:        flightBasePrice + 35,
			Origin:       from,
			Destination:  to,
		},
		{
			Airline:      "CloudAir",
			FlightNumber: "CA722",
			DepartTime:   date + "T19:45",
			ArriveTime:   date + "T22:25",
			Duration:     "2h 40m",
			Price:        flightBasePrice + 10,
			Origin:       from,
			Destination:  to,
		},
	}

	s.bestEffort(ctx, entity.SearchQuery{
		Type:        entity.SearchFlights,
		Origin:      origin,
		Destination: destination,
		Date:        date,
	})
	return flights
}

// SearchHotels returns the fixed hotel table for the city and logs the search
func (s *SearchService) SearchHotels(ctx context.Context, city, checkin, checkout string) []entity.HotelOption {
	location := utils.TitleCase(city)

	hotels := []entity.HotelOption{
		{
			Name:          "Grand Central Hotel",
			Location:      location,
			Rating:        4.5,
			PricePerNight: 129.0,
			Image:         image("https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:          "Urban Stay Boutique",
			Location:      location,
			Rating:        4.2,
			PricePerNight: 99.0,
			Image:         image("https://images.unsplash.com/photo-1496412705862-e0088f16f791?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:          "Skyline Suites",
			Location:      location,
			Rating:        4.8,
			PricePerNight: 189.0,
			Image:         image("https://images.unsplash.com/photo-1502920917128-1aa500764cbd?q=80&w=1200&auto=format&fit=crop"),
		},
	}

	s.bestEffort(ctx, entity.SearchQuery{
		Type:     entity.SearchHotels,
		City:     city,
		Checkin:  checkin,
		Checkout: checkout,
	})
	return hotels
}

// SearchTrains returns the fixed train table for the route and logs the search
func (s *SearchService) SearchTrains(ctx context.Context, origin, destination, date string) []entity.TrainOption {
	from, to := strings.ToUpper(origin), strings.ToUpper(destination)

	trains := []entity.TrainOption{
		{
			TrainName:   "Express Line",
			TrainNumber: "EX123",
			DepartTime:  date + "T07:10",
			ArriveTime:  date + "T13:30",
			Duration:    "6h 20m",
			Price:       24.0,
			Origin:      from,
			Destination: to,
		},
		{
			TrainName:   "Rapid Rider",
			TrainNumber: "RR452",
			DepartTime:  date + "T15:00",
			ArriveTime:  date + "T21:10",
			Duration:    "6h 10m",
			Price:       27.5,
			Origin:      from,
			Destination: to,
		},
	}

	s.bestEffort(ctx, entity.SearchQuery{
		Type:        entity.SearchTrains,
		Origin:      origin,
		Destination: destination,
		Date:        date,
	})
	return trains
}

// LogSearch records a search query; failures are returned to the caller
func (s *SearchService) LogSearch(ctx context.Context, query entity.SearchQuery) (string, error) {
	return s.gateway.CreateDocument(ctx, entity.SearchCollection, query)
}

// RecentSearches returns up to limit logged searches, newest first
func (s *SearchService) RecentSearches(ctx context.Context, limit int) ([]entity.Document, error) {
	docs, err := s.gateway.GetDocuments(ctx, entity.SearchCollection, nil, limit)
	if err != nil {
		return nil, err
	}
	return Materialize(docs), nil
}

// bestEffort logs a search and discards any failure. Only the mock search
// operations use it; the primary response must not depend on the search log.
func (s *SearchService) bestEffort(ctx context.Context, query entity.SearchQuery) {
	if s.metrics != nil {
		s.metrics.SearchesServed.WithLabelValues(string(query.Type)).Inc()
	}

	if _, err := s.gateway.CreateDocument(ctx, entity.SearchCollection, query); err != nil {
		s.logger.Warn("Search log write dropped", "type", query.Type, "error", err)
		if s.metrics != nil {
			s.metrics.BestEffortDropped.WithLabelValues(string(query.Type)).Inc()
		}
	}
}

func image(url string) *string {
	return &url
}
