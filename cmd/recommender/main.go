// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Command recommender trains a matrix factorization model on the ratings
// CSVs, reports its error on the test split, prints a sample prediction and
// top-K list, then saves the model for the server.
//
// It reads the same configuration as the server (config.yaml, .env and
// environment variables). Run it from a directory containing Data/ or set
// DATA_DIR.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/movierecommender/internal/config"
	"github.com/tomtom215/movierecommender/internal/console"
	"github.com/tomtom215/movierecommender/internal/logging"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logCfg := cfg.Logging.LoggerConfig()
	logCfg.Service = "recommender"
	logging.Init(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewCorrelationID(ctx)

	if err := console.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		logging.Fatal().Err(err).Msg("Recommender run failed")
	}
}
