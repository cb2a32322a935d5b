package main

import (
	"context"
	"flag"
	"log"

	"investr/internal/repository"
	"investr/pkg/config"
	"investr/pkg/logger"
	"investr/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "rate table YAML to load (default: RATE_TABLE_FILE or the built-in table)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	path := cfg.Rates.TableFile
	if *file != "" {
		path = *file
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rateRepo := repository.NewRateRepository(db, appLogger)
	source := repository.NewFileRateSource(path)

	appLogger.Info("Starting rate table seeding...", zap.String("source", source.Name()))

	table, err := source.LoadRates(ctx)
	if err != nil {
		appLogger.Fatal("Failed to read rate table", zap.Error(err))
	}

	if err := rateRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to create rate table schema", zap.Error(err))
	}
	if err := rateRepo.Upsert(ctx, table); err != nil {
		appLogger.Fatal("Failed to seed rate table", zap.Error(err))
	}

	appLogger.Info("Rate table seeding completed successfully!", zap.Int("rows", len(table.Rows())))
}
