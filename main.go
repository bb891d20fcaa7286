package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shoecard/app"
	"shoecard/config"
	"shoecard/logger"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not load .env: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	baseLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = baseLogger.Sync() }()

	root, err := app.Initialize(cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to initialize", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		baseLogger.Error("command failed", zap.Error(err))
		_ = baseLogger.Sync()
		stop()
		os.Exit(1)
	}
}
