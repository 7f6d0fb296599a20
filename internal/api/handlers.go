// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package api

import (
	"context"
	"time"

	"github.com/tomtom215/movierecommender/internal/config"
	"github.com/tomtom215/movierecommender/internal/recommend"
	"github.com/tomtom215/movierecommender/internal/recommend/storage"
)

// ModelLister is the part of storage.ModelStore the model status endpoint
// needs.
type ModelLister interface {
	ListModels(ctx context.Context) ([]storage.ModelMetadata, error)
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_movies.go: recommendation, prediction and catalog queries
//   - handlers_health.go: liveness, readiness and model status
//   - handlers_helpers.go: response and parameter helpers
type Handler struct {
	engine    *recommend.Engine
	models    ModelLister
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler. models may be nil, in which case the
// model status endpoint reports only the engine state.
//
//	handler := api.NewHandler(engine, store, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
func NewHandler(engine *recommend.Engine, models ModelLister, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		models:    models,
		config:    cfg,
		startTime: time.Now(),
	}
}
