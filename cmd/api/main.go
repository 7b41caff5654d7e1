package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heladeria/internal/config"
	"heladeria/internal/handler"
	"heladeria/internal/repository"
	"heladeria/internal/router"
	"heladeria/internal/seed"
	"heladeria/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting heladeria API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := repository.NewPool(ctx, cfg.Database.URL, &repository.DBConfig{
		MaxConns:        int32(cfg.Database.MaxConnections),
		MinConns:        int32(cfg.Database.MinConnections),
		ConnMaxLifetime: time.Duration(cfg.Database.MaxConnLifetime) * time.Second,
		ConnMaxIdleTime: 30 * time.Minute,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	heladoRepo := repository.NewHeladoRepository(pool, logger)

	// The listener never starts without the table.
	if err := heladoRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	seedCatalogue(ctx, cfg.Seed, heladoRepo, logger)

	heladoService := service.NewHeladoService(heladoRepo, logger)
	heladoHandler := handler.NewHeladoHandler(heladoService, logger)
	mux := router.New(heladoHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,

		// Per-connection read/write failures are logged and the listener keeps serving.
		ErrorLog: log.New(logger.With().Str("component", "http-server").Logger(), "", 0),
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalogue fills an empty table from the configured seed files.
// Seeding is best effort and never blocks startup.
func seedCatalogue(ctx context.Context, cfg config.SeedConfig, store seed.Store, logger zerolog.Logger) {
	if len(cfg.Files) == 0 {
		return
	}

	var s3Loader seed.Loader
	if cfg.S3Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 seed loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	}

	loader := seed.NewFallbackLoader(s3Loader, seed.NewFileLoader(logger), cfg.S3Prefix, logger)

	if _, err := seed.NewSeeder(loader, store, cfg.Files, logger).Seed(ctx); err != nil {
		logger.Warn().Err(err).Msg("catalogue seeding failed, continuing with existing data")
	}
}
