// main.go
package main

import (
	"log"
	"time"

	"marketplace-admin/cmd"
	"marketplace-admin/internal/data/repository"
	"marketplace-admin/internal/wire"
	"marketplace-admin/pkg/broker"
	"marketplace-admin/pkg/cache"
	"marketplace-admin/pkg/database"
	"marketplace-admin/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Stats cache is optional; dashboard queries hit Postgres directly without it
	var stats *cache.StatsCache
	if config.Redis.Addr != "" {
		client, err := cache.NewClient(config.Redis)
		if err != nil {
			logger.Warn("Failed to connect to Redis, stats cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			stats = cache.NewStatsCache(client, time.Duration(config.Redis.StatsTTLSec)*time.Second)
			logger.Info("Stats cache connected", zap.String("addr", config.Redis.Addr))
		}
	}

	// Event broker is optional; status updates still succeed without it
	var publisher broker.Publisher
	if config.Broker.URL != "" {
		client, err := broker.Dial(config.Broker.URL, config.Broker.Exchange)
		if err != nil {
			logger.Warn("Failed to connect to broker, events disabled", zap.Error(err))
		} else {
			defer client.Close()
			publisher = client
			logger.Info("Event broker connected", zap.String("exchange", config.Broker.Exchange))
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, publisher, stats, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
