package handler

import (
	"net/http"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/internal/usecase"
	"travel-explorer-service/pkg/apperr"
	"travel-explorer-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves the search and search-log endpoints
type SearchHandler struct {
	searches *usecase.SearchService
	logger   logger.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searches *usecase.SearchService, log logger.Logger) *SearchHandler {
	return &SearchHandler{searches: searches, logger: log}
}

type routeQuery struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

type hotelQuery struct {
	City     string `form:"city" binding:"required"`
	Checkin  string `form:"checkin" binding:"required"`
	Checkout string `form:"checkout" binding:"required"`
}

type recentQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

// RegisterRoutes mounts the search endpoints on r
func (h *SearchHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/search", h.CreateSearch)
	r.GET("/api/searches", h.ListRecentSearches)
	r.GET("/api/search/flights", h.SearchFlights)
	r.GET("/api/search/hotels", h.SearchHotels)
	r.GET("/api/search/trains", h.SearchTrains)
}

// CreateSearch logs a search query. Storage failures are returned as 500.
func (h *SearchHandler) CreateSearch(c *gin.Context) {
	var query entity.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		validationError(c, err)
		return
	}

	id, err := h.searches.LogSearch(c.Request.Context(), query)
	if err != nil {
		storageError(c, err)
		return
	}
	h.logger.Info("Search logged", "id", id, "type", query.Type)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

// ListRecentSearches returns the newest logged searches
func (h *SearchHandler) ListRecentSearches(c *gin.Context) {
	var q recentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}

	items, err := h.searches.RecentSearches(c.Request.Context(), q.Limit)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SearchFlights returns mock flights
func (h *SearchHandler) SearchFlights(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.searches.SearchFlights(c.Request.Context(), q.Origin, q.Destination, q.Date))
}

// SearchHotels returns mock hotels
func (h *SearchHandler) SearchHotels(c *gin.Context) {
	var q hotelQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.searches.SearchHotels(c.Request.Context(), q.City, q.Checkin, q.Checkout))
}

// SearchTrains returns mock trains
func (h *SearchHandler) SearchTrains(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.searches.SearchTrains(c.Request.Context(), q.Origin, q.Destination, q.Date))
}

func storageError(c *gin.Context, err error) {
	c.JSON(apperr.StatusOf(err), ErrorResponse{Detail: err.Error()})
}
