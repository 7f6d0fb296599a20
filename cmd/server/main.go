// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/movierecommender/docs" // Import generated swagger docs
	"github.com/tomtom215/movierecommender/internal/api"
	"github.com/tomtom215/movierecommender/internal/config"
	"github.com/tomtom215/movierecommender/internal/logging"
	"github.com/tomtom215/movierecommender/internal/recommend"
	"github.com/tomtom215/movierecommender/internal/recommend/storage"
	"github.com/tomtom215/movierecommender/internal/supervisor"
	"github.com/tomtom215/movierecommender/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := cfg.Logging.LoggerConfig()
	logCfg.Service = "server"
	logging.Init(logCfg)
	logging.Info().Str("config", cfg.String()).Msg("Starting MovieRecommender server")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS to your front-end hosts")
	}

	store, err := storage.Open(cfg.Model.Backend, cfg.Model.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Model.Backend).Msg("Failed to open model store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing model store")
		}
	}()

	engine, err := recommend.NewEngine(cfg.API.EngineConfig(), logging.WithComponent("engine"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	modelService := services.NewModelService(engine, store, services.ModelServiceConfig{
		ModelName:       cfg.Model.Name,
		MoviesPath:      cfg.Data.MoviesPath(),
		Schema:          cfg.Catalog.Schema(),
		ReloadInterval:  cfg.Model.ReloadInterval,
		BreakerFailures: uint32(cfg.Model.BreakerFailures), //nolint:gosec // validated non-negative
		BreakerTimeout:  cfg.Model.BreakerTimeout,
	}, logging.Logger())
	tree.AddModelService(modelService)

	handler := api.NewHandler(engine, store, cfg)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel carries a single result and is never closed.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Server stopped gracefully")
}
