// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/movierecommender/internal/catalog"
	"github.com/tomtom215/movierecommender/internal/metrics"
	"github.com/tomtom215/movierecommender/internal/recommend"
	"github.com/tomtom215/movierecommender/internal/recommend/algorithms"
	"github.com/tomtom215/movierecommender/internal/recommend/storage"
)

// ModelEngine is the part of recommend.Engine the loader drives.
type ModelEngine interface {
	Catalog() *catalog.Catalog
	SetCatalog(cat *catalog.Catalog)
	SetModel(scorer recommend.Scorer, version int)
	ModelVersion() int
	MarkLoadFailed(component string, err error)
}

// ModelSource is the read side of storage.ModelStore.
type ModelSource interface {
	LatestVersion(ctx context.Context, name string) (int, error)
	Load(ctx context.Context, name string, version int, target interface{}) (*storage.ModelMetadata, error)
}

// ModelServiceConfig holds configuration for the model loader.
type ModelServiceConfig struct {
	// ModelName is the stored model to serve.
	ModelName string

	// MoviesPath and Schema locate and describe the movie catalog CSV.
	MoviesPath string
	Schema     catalog.Schema

	// ReloadInterval is how often the store is polled for a newer
	// version. Zero loads once at startup and never polls.
	ReloadInterval time.Duration

	// BreakerFailures consecutive store failures open the breaker;
	// BreakerTimeout later a single probe load is allowed through.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Load outcomes, also used as metric labels.
const (
	LoadSuccess   = "success"
	LoadUnchanged = "unchanged"
	LoadFailure   = "failure"
	LoadRejected  = "rejected"
)

const breakerName = "model-store"

// loadedModel is what a successful store read produces.
type loadedModel struct {
	scorer  recommend.Scorer
	version int
	meta    *storage.ModelMetadata
}

// ModelService loads the movie catalog and the latest stored model into the
// engine, then keeps polling the store and hot-swaps newer versions.
//
// Store reads go through a circuit breaker. A missing model does not count
// against the breaker; corrupt files and store errors do. While the breaker
// is open, polls are skipped and the current model keeps serving.
//
//	svc := services.NewModelService(engine, store, services.ModelServiceConfig{
//	    ModelName:      cfg.Model.Name,
//	    MoviesPath:     cfg.Data.MoviesPath(),
//	    Schema:         cfg.Catalog.Schema(),
//	    ReloadInterval: cfg.Model.ReloadInterval,
//	}, logging.Logger())
//	tree.AddModelService(svc)
type ModelService struct {
	engine  ModelEngine
	source  ModelSource
	config  ModelServiceConfig
	logger  zerolog.Logger
	breaker *gobreaker.CircuitBreaker[*loadedModel]
	name    string
}

// NewModelService creates the loader service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewModelService(engine ModelEngine, source ModelSource, cfg ModelServiceConfig, logger zerolog.Logger) *ModelService {
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = time.Minute
	}

	s := &ModelService{
		engine: engine,
		source: source,
		config: cfg,
		logger: logger.With().Str("service", "model").Str("model", cfg.ModelName).Logger(),
		name:   "model-service",
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	s.breaker = gobreaker.NewCircuitBreaker[*loadedModel](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, storage.ErrModelNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), int(to))
		},
	})

	return s
}

// Serve implements suture.Service.
func (s *ModelService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("movies", s.config.MoviesPath).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("model service starting")

	s.tick(ctx)

	if s.config.ReloadInterval <= 0 {
		<-ctx.Done()
		s.logger.Info().Msg("model service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("model service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick loads the catalog if it is still missing, then checks for a newer
// model.
func (s *ModelService) tick(ctx context.Context) {
	if s.engine.Catalog() == nil {
		if err := s.LoadCatalog(); err != nil {
			s.engine.MarkLoadFailed("catalog", err)
		}
	}
	s.Reload(ctx)
}

// LoadCatalog reads the movie CSV and installs it in the engine.
func (s *ModelService) LoadCatalog() error {
	cat, err := catalog.LoadFile(s.config.MoviesPath, s.config.Schema)
	if err != nil {
		return err
	}
	s.engine.SetCatalog(cat)
	return nil
}

// Reload activates the latest stored model if it is newer than the one
// serving. It returns one of the Load* outcome constants.
func (s *ModelService) Reload(ctx context.Context) string {
	current := s.engine.ModelVersion()

	loaded, err := s.breaker.Execute(func() (*loadedModel, error) {
		return s.loadLatest(ctx, current)
	})

	var outcome string
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		outcome = LoadRejected
		s.logger.Debug().Err(err).Msg("model reload skipped, breaker open")
	case err != nil:
		outcome = LoadFailure
		s.engine.MarkLoadFailed("model", err)
	case loaded == nil:
		outcome = LoadUnchanged
	default:
		outcome = LoadSuccess
		s.engine.SetModel(loaded.scorer, loaded.version)
		s.logger.Info().
			Int("version", loaded.version).
			Int("previous_version", current).
			Time("trained_at", loaded.meta.TrainedAt).
			Float64("rmse", loaded.meta.RMSE).
			Msg("model hot-swapped")
	}

	metrics.RecordModelLoad(outcome)
	return outcome
}

// loadLatest returns nil, nil when the store has nothing newer than current.
func (s *ModelService) loadLatest(ctx context.Context, current int) (*loadedModel, error) {
	latest, err := s.source.LatestVersion(ctx, s.config.ModelName)
	if err != nil {
		return nil, fmt.Errorf("find latest version: %w", err)
	}
	if latest <= current {
		return nil, nil
	}

	var state storage.MFModelState
	meta, err := s.source.Load(ctx, s.config.ModelName, latest, &state)
	if err != nil {
		return nil, fmt.Errorf("load version %d: %w", latest, err)
	}

	mf, err := algorithms.NewMatrixFactorizationFromState(state)
	if err != nil {
		return nil, fmt.Errorf("restore version %d: %w", latest, err)
	}
	return &loadedModel{scorer: mf, version: latest, meta: meta}, nil
}

// BreakerState reports the circuit breaker state ("closed", "half-open",
// "open").
func (s *ModelService) BreakerState() string {
	return s.breaker.State().String()
}

// String returns the service name for logging.
func (s *ModelService) String() string {
	return s.name
}
