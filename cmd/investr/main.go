package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"investr/internal/api"
	"investr/internal/api/handlers"
	"investr/internal/repository"
	"investr/internal/service"
	"investr/internal/session"
	"investr/pkg/auth"
	"investr/pkg/config"
	"investr/pkg/logger"
	"investr/pkg/postgres"

	"go.uber.org/zap"
)

// @title Investr API
// @version 1.0
// @description Property investment calculators: mortgage rates, projections, simulations and buy/avoid recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting investr service")

	ctx := context.Background()

	// Rate table: Postgres when enabled, then the configured or embedded file
	var rateSources []service.RateSource
	if cfg.Database.Enabled {
		db, err := postgres.NewPool(ctx, &cfg.Database, logger.Component("postgres"))
		if err != nil {
			appLogger.Warn("Database unavailable, using file rate table", zap.Error(err))
		} else {
			defer db.Close()
			rateSources = append(rateSources, repository.NewRateRepository(db, logger.Component("rates")))
		}
	}
	rateSources = append(rateSources, repository.NewFileRateSource(cfg.Rates.TableFile))

	table, err := service.LoadRateTable(ctx, appLogger, rateSources...)
	if err != nil {
		appLogger.Fatal("Failed to load mortgage rate table", zap.Error(err))
	}

	// Recommendation cache
	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.Redis.Enabled {
		redisCache, err := repository.NewRedisCache(ctx, &cfg.Redis, logger.Component("redis"))
		if err != nil {
			appLogger.Warn("Redis unavailable, caching in memory", zap.Error(err))
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	// Initialize services
	upstream := service.NewUpstreamClient(&cfg.Upstream, logger.Component("upstream"))
	rateService := service.NewRateService(table, logger.Component("rates"))
	simService := service.NewSimulationService(rateService, upstream, logger.Component("simulation"))
	recService := service.NewRecommendationService(upstream, cache, cfg.Redis.CacheTTL, logger.Component("recommendation"))

	store := session.NewStore(cfg.Session.TTL)
	defer store.Stop()

	var jwtManager *auth.JWTManager
	if cfg.JWT.Enabled {
		jwtManager = auth.NewJWTManager(cfg.JWT.SecretKey)
	}

	// Initialize handlers
	calcHandler := handlers.NewCalculatorHandler(rateService, simService, recService, logger.Component("api"))
	sessionHandler := handlers.NewSessionHandler(store, simService, recService, logger.Component("api"))

	// Setup router
	app := api.SetupRouter(calcHandler, sessionHandler, jwtManager, cfg, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
