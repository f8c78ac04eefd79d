package main

// @title Activity Finder API
// @version 1.0.0
// @description Сервис поиска детских и семейных активностей. Геокодирует название города через Nominatim и находит точки интереса выбранных категорий (площадки, парки, зоопарки, музеи) через Overpass API.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/activity-finder/docs"
	"github.com/activity-finder/internal/config"
	httpDelivery "github.com/activity-finder/internal/delivery/http"
	"github.com/activity-finder/internal/delivery/http/handler"
	"github.com/activity-finder/internal/infrastructure/nominatim"
	"github.com/activity-finder/internal/infrastructure/overpass"
	"github.com/activity-finder/internal/pkg/logger"
	"github.com/activity-finder/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Activity Finder")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("nominatim_url", cfg.Nominatim.BaseURL),
		zap.String("overpass_url", cfg.Overpass.BaseURL),
	)

	// 3. Initialize external service clients
	geocoderRepo := nominatim.NewClient(&cfg.Nominatim, log)
	activityRepo := overpass.NewClient(&cfg.Overpass, log)

	log.Info("External service clients initialized")

	// 4. Initialize Use Cases
	geocodeUC := usecase.NewGeocodeUseCase(geocoderRepo, log)
	activitiesUC := usecase.NewActivitiesUseCase(activityRepo, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP Handlers
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	activitiesHandler := handler.NewActivitiesHandler(activitiesUC, log)

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		geocodeHandler,
		activitiesHandler,
	)

	log.Info("HTTP server initialized")

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
