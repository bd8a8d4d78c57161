package main

import (
	"context"
	"log"
	"time"

	"pterostore/internal/seed"
	"pterostore/pkg/config"
	"pterostore/pkg/database"
	"pterostore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := seed.Run(ctx, db, cfg); err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}
}
