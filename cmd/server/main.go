package main

import (
	"context"
	"errors"
	"fmt"
	"great-circle-service/internal/adapters/distance"
	"great-circle-service/internal/adapters/history"
	"great-circle-service/internal/api"
	"great-circle-service/internal/config"
	"great-circle-service/internal/platform/db"
	"great-circle-service/internal/platform/kv"
	"great-circle-service/internal/platform/obs"
	"great-circle-service/internal/ports"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// main is the application composition root.
// It picks a lookup history backend, wires the Haversine provider behind its
// port and starts the HTTP server.
func main() {
	envLoaded := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := obs.NewLogger(obs.LoggerConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if !envLoaded {
		logger.Debug().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	recorder, closeHistory, err := openHistory(ctx, cfg.History)
	if err != nil {
		logger.Fatal().Err(err).Msg("open lookup history")
	}
	defer closeHistory()

	provider := distance.NewHaversineProvider(recorder)
	router := api.NewRouter(logger, provider, recorder)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := serve(ctx, srv, srv.ListenAndServe); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return
	}
	logger.Info().Msg("server stopped")
}

// serve runs start until ctx is canceled, then shuts srv down and returns
// only after in-flight requests have drained (or the drain timeout expires).
// Callers may release resources used by handlers once serve returns.
func serve(ctx context.Context, srv *http.Server, start func() error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}
	return nil
}

// openHistory selects Postgres, then Redis, then in-memory history.
func openHistory(ctx context.Context, cfg config.HistoryConfig) (ports.LookupRecorder, func(), error) {
	logger := zerolog.Ctx(ctx)

	switch {
	case cfg.DatabaseURL != "":
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := history.InitSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.Info().Str("backend", "postgres").Msg("lookup history ready")
		return history.NewSQLLookupLog(conn), func() { _ = conn.Close() }, nil

	case cfg.RedisAddr != "":
		client, err := kv.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Str("backend", "redis").Str("addr", cfg.RedisAddr).Msg("lookup history ready")
		return history.NewRedisLookupLog(client, cfg.MaxEntries), func() { _ = client.Close() }, nil

	default:
		logger.Info().Str("backend", "memory").Msg("lookup history ready")
		return history.NewMemoryLookupLog(cfg.MaxEntries), func() {}, nil
	}
}
