package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-explorer-service/internal/infrastructure/config"
	"travel-explorer-service/internal/infrastructure/persistence"
	"travel-explorer-service/internal/infrastructure/router"
	"travel-explorer-service/internal/interface/handler"
	"travel-explorer-service/internal/usecase"
	"travel-explorer-service/pkg/logger"
	"travel-explorer-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Travel Explorer Service", "version", cfg.AppVersion)

	gin.SetMode(cfg.GinMode)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect the document store. A missing or unreachable database leaves the
	// connector unavailable; the service still starts.
	connector := persistence.NewConnector(log)
	_ = connector.Connect(ctx, persistence.Options{
		URL:     cfg.DatabaseURL,
		Name:    cfg.DatabaseName,
		Driver:  cfg.DatabaseDriver,
		Timeout: cfg.ConnectTimeout,
	})

	m := metrics.NewMetrics("travel_explorer", prometheus.DefaultRegisterer)

	gateway := usecase.NewDocumentGateway(connector, usecase.NewDocumentCodec(nil), cfg.StorageTimeout, log, m)
	searches := usecase.NewSearchService(gateway, log, m)

	engine := router.New(log, m, prometheus.DefaultGatherer,
		handler.NewDiagnosticsHandler(connector, handler.DatabaseSettings{
			URLSet:  cfg.DatabaseURLSet(),
			NameSet: cfg.DatabaseNameSet(),
		}),
		handler.NewSearchHandler(searches, log),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := connector.Close(shutdownCtx); err != nil {
		log.Error("Document store disconnect error", "error", err)
	}

	log.Info("Travel Explorer Service stopped")
}
