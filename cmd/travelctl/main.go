package main

import (
	"context"
	"os"

	"travel-explorer-service/internal/infrastructure/config"
	"travel-explorer-service/internal/infrastructure/persistence"
	"travel-explorer-service/internal/interface/cli"
	"travel-explorer-service/internal/usecase"
	"travel-explorer-service/pkg/logger"
)

var version = "dev"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Keep stdout clean for JSON output; only warnings and above are logged.
	log := logger.NewLogger("warn")
	defer log.Sync()

	ctx := context.Background()

	connector := persistence.NewConnector(log)
	_ = connector.Connect(ctx, persistence.Options{
		URL:     cfg.DatabaseURL,
		Name:    cfg.DatabaseName,
		Driver:  cfg.DatabaseDriver,
		Timeout: cfg.ConnectTimeout,
	})
	defer connector.Close(ctx)

	gateway := usecase.NewDocumentGateway(connector, usecase.NewDocumentCodec(nil), cfg.StorageTimeout, log, nil)
	root := cli.New(cli.Deps{
		Connector: connector,
		Searches:  usecase.NewSearchService(gateway, log, nil),
		Timeout:   cfg.ConnectTimeout,
	}, version)

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
