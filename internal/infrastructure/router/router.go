package router

import (
	"net/http"
	"strconv"
	"time"

	"travel-explorer-service/internal/interface/handler"
	"travel-explorer-service/pkg/logger"
	"travel-explorer-service/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes is anything that can mount its endpoints on a router
type Routes interface {
	RegisterRoutes(r gin.IRouter)
}

// New builds the HTTP engine: recovery, permissive CORS, request metrics,
// the given route groups and /metrics served from gatherer.
func New(log logger.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer, routes ...Routes) *gin.Engine {
	handler.RegisterValidation()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(PublicCORS()))
	engine.Use(RequestMetrics(m))
	engine.Use(RequestLogger(log))

	for _, r := range routes {
		r.RegisterRoutes(engine)
	}

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Detail: "Not Found"})
	})

	return engine
}

// PublicCORS allows every origin, method and header. The API is a public demo.
func PublicCORS() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// RequestMetrics counts and times requests by route template
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RequestLogger logs one line per request at debug level
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
