package main

// @title Recreation Search API
// @version 1.0.0
// @description Поиск объектов отдыха (сайты, тропы, леса) с фасетным меню фильтров.
// @description Счетчики фильтров и total считаются в одном снапшоте со страницей результатов.

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/recreation-search/docs"
	"github.com/recreation-search/internal/config"
	httpDelivery "github.com/recreation-search/internal/delivery/http"
	"github.com/recreation-search/internal/delivery/http/handler"
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/domain/repository"
	"github.com/recreation-search/internal/pkg/logger"
	"github.com/recreation-search/internal/repository/cache"
	"github.com/recreation-search/internal/repository/postgres"
	"github.com/recreation-search/internal/usecase"
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

	log.Info("Starting Recreation Search")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Ints("excluded_activities", cfg.Search.ExcludedActivities),
		zap.Strings("excluded_districts", cfg.Search.ExcludedDistricts),
		zap.Strings("excluded_types", cfg.Search.ExcludedTypes),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Connect to Redis; без Redis поиск работает без кеша
	var cacheRepo repository.CacheRepository
	healthChecks := map[string]handler.HealthChecker{"postgres": db}

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, search cache disabled", zap.Error(err))
	} else {
		cacheRepo = cache.NewCacheRepository(redisClient)
		healthChecks["redis"] = redisClient
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	resourceRepo := postgres.NewRecreationResourceRepository(
		db,
		domain.ExcludedCodes{
			Activities: cfg.Search.ExcludedActivities,
			Districts:  cfg.Search.ExcludedDistricts,
			Types:      cfg.Search.ExcludedTypes,
		},
		cfg.Search.GeoRadiusMeters,
	)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	searchUC := usecase.NewSearchUseCase(
		resourceRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchCacheTTL,
		cfg.Search,
	)
	resourceUC := usecase.NewRecreationResourceUseCase(resourceRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	searchHandler := handler.NewSearchHandler(searchUC, resourceUC, log)
	healthHandler := handler.NewHealthHandler(healthChecks, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, searchHandler, healthHandler)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
