package main

// @title GPX Analyzer API
// @version 1.0.0
// @description Сервис анализа GPX-треков: состав покрытия маршрута по данным OpenStreetMap, оценки пригодности для шоссейного и гравийного велосипеда, набор и потеря высоты.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/kotaicode/gpx-analyzer/docs"
	"github.com/kotaicode/gpx-analyzer/internal/config"
	httpDelivery "github.com/kotaicode/gpx-analyzer/internal/delivery/http"
	"github.com/kotaicode/gpx-analyzer/internal/delivery/http/handler"
	"github.com/kotaicode/gpx-analyzer/internal/domain/repository"
	"github.com/kotaicode/gpx-analyzer/internal/infrastructure/overpass"
	"github.com/kotaicode/gpx-analyzer/internal/pkg/logger"
	"github.com/kotaicode/gpx-analyzer/internal/repository/cache"
	"github.com/kotaicode/gpx-analyzer/internal/usecase"
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

	log.Info("Starting GPX Analyzer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("overpass_url", cfg.Overpass.URL),
		zap.Float64("match_tolerance_m", cfg.Analysis.MatchToleranceMeters),
		zap.Bool("degrade_on_geodata_failure", cfg.Analysis.DegradeOnGeodataFailure),
	)

	// 3. Connect to Redis (опционально - кеш ответов геоданных)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Geodata cache enabled", zap.Duration("ttl", cfg.Cache.GeodataCacheTTL))
	} else {
		log.Info("Geodata cache disabled")
	}

	// 4. Initialize geodata client
	geodataRepo := overpass.NewOverpassClient(&cfg.Overpass, log)
	log.Info("Overpass client initialized")

	// 5. Initialize use cases
	analysisUC := usecase.NewAnalysisUseCase(
		geodataRepo,
		cacheRepo,
		log,
		cfg.Analysis,
		cfg.Cache.GeodataCacheTTL,
	)
	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	analyzeHandler := handler.NewAnalyzeHandler(analysisUC, log, cfg.Server.MaxFileSize)

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, analyzeHandler)
	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
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
