package main

import (
	"context"

	"catalog/collector/internal/config"
	"catalog/collector/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting catalog collector...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Info("Configuration loaded successfully")

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the collection. Errors end the process cleanly with a log line.
	if err := app.Run(context.Background()); err != nil {
		log.Errorf("Collection finished with error: %v", err)
		return
	}

	log.Info("Application finished successfully")
}
