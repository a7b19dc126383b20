package handler

import (
	"context"
	"net/http"

	"travel-explorer-service/internal/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

const maxListedCollections = 10

// StatusProvider reports document store availability
type StatusProvider interface {
	Describe(ctx context.Context) persistence.Status
}

// DatabaseSettings tells whether the database environment was configured.
// It is reported separately from the connector's own outcome.
type DatabaseSettings struct {
	URLSet  bool
	NameSet bool
}

// DiagnosticsResponse is the body of GET /test
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsHandler serves the liveness and diagnostic endpoints
type DiagnosticsHandler struct {
	status   StatusProvider
	settings DatabaseSettings
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(status StatusProvider, settings DatabaseSettings) *DiagnosticsHandler {
	return &DiagnosticsHandler{status: status, settings: settings}
}

// RegisterRoutes mounts the liveness and diagnostic endpoints on r
func (h *DiagnosticsHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Travel Explorer Backend is running"})
	})
	r.GET("/api/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the Travel Explorer API!"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	r.GET("/test", h.Diagnose)
}

// Diagnose reports backend and database status. It always answers 200.
func (h *DiagnosticsHandler) Diagnose(c *gin.Context) {
	c.JSON(http.StatusOK, h.Build(c.Request.Context()))
}

// Build assembles the diagnostic response
func (h *DiagnosticsHandler) Build(ctx context.Context) DiagnosticsResponse {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	status := h.status.Describe(ctx)
	switch {
	case status.Available:
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"
		if status.ProbeError != "" {
			resp.Database = "⚠️ Connected but Error: " + truncate(status.ProbeError, 50)
			break
		}
		resp.Collections = status.Collections
		if len(resp.Collections) > maxListedCollections {
			resp.Collections = resp.Collections[:maxListedCollections]
		}
		resp.Database = "✅ Connected & Working"
	case status.State == persistence.StateUninitialized:
		resp.Database = "⚠️ Available but not initialized"
	}

	resp.DatabaseURL = setFlag(h.settings.URLSet)
	resp.DatabaseName = setFlag(h.settings.NameSet)
	return resp
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
