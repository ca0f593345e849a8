package main

import (
	"context"
	"errors"
	"fmt"
	"great-circle-service/internal/adapters/history"
	"great-circle-service/internal/config"
	"great-circle-service/internal/platform/db"
	"great-circle-service/internal/platform/obs"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	envLoaded := config.LoadDotEnv()
	logger := obs.NewLogger(obs.LoggerConfig{
		Level:  config.Get("LOG_LEVEL", "info"),
		Format: config.Get("LOG_FORMAT", "console"),
	})
	if !envLoaded {
		logger.Info().Msg("no .env file found (using environment variables)")
	}

	if err := run(logger.WithContext(context.Background()), config.Get("DATABASE_URL", "")); err != nil {
		logger.Fatal().Err(err).Msg("dbtool failed")
	}
}

// run initializes the lookup history schema. Resources are released before it returns.
func run(ctx context.Context, databaseURL string) error {
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("initializing database schema")
	if err := history.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info().Msg("schema ready")

	return nil
}
