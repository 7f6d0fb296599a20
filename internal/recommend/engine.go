// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/movierecommender/internal/catalog"
	"github.com/tomtom215/movierecommender/internal/metrics"
)

// ErrNotReady is returned while the engine lacks a catalog or a model.
var ErrNotReady = errors.New("recommendation engine not ready")

// Engine serves rankings from the currently active catalog and model.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog atomic.Pointer[catalog.Catalog]
	model   atomic.Pointer[activeModel]

	// Load failures
	errMu     sync.RWMutex
	lastError string
	failedAt  time.Time

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

type activeModel struct {
	scorer   Scorer
	version  int
	loadedAt time.Time
}

// Status is a point-in-time snapshot of the engine, served by the
// readiness and model endpoints.
type Status struct {
	Ready         bool      `json:"ready"`
	CatalogLoaded bool      `json:"catalog_loaded"`
	CatalogSize   int       `json:"catalog_size"`
	ModelLoaded   bool      `json:"model_loaded"`
	ModelVersion  int       `json:"model_version"`
	ModelLoadedAt time.Time `json:"model_loaded_at,omitempty"`
	LastError     string    `json:"last_error,omitempty"`
	LastErrorAt   time.Time `json:"last_error_at,omitempty"`
	RequestCount  int64     `json:"request_count"`
	ErrorCount    int64     `json:"error_count"`
}

// NewEngine creates an engine with no catalog or model loaded.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	metrics.SetReady(false)
	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine limits.
func (e *Engine) Config() Config {
	return *e.config
}

// SetCatalog replaces the active catalog.
func (e *Engine) SetCatalog(cat *catalog.Catalog) {
	if cat == nil {
		return
	}
	e.catalog.Store(cat)
	e.clearError()
	metrics.CatalogMovies.Set(float64(cat.Len()))
	metrics.SetReady(e.Ready())

	e.logger.Info().Int("movies", cat.Len()).Msg("catalog loaded")
}

// SetModel replaces the active scorer. version identifies the stored model
// the scorer was built from.
func (e *Engine) SetModel(scorer Scorer, version int) {
	if scorer == nil {
		return
	}
	e.model.Store(&activeModel{
		scorer:   scorer,
		version:  version,
		loadedAt: time.Now(),
	})
	e.clearError()
	metrics.ModelVersion.Set(float64(version))
	metrics.SetReady(e.Ready())

	e.logger.Info().Int("version", version).Msg("model activated")
}

// ModelVersion returns the active model version, or 0 when none is loaded.
func (e *Engine) ModelVersion() int {
	if m := e.model.Load(); m != nil {
		return m.version
	}
	return 0
}

// MarkLoadFailed records a failed catalog or model load. A previously
// loaded catalog or model stays active.
func (e *Engine) MarkLoadFailed(component string, err error) {
	if err == nil {
		return
	}

	e.errMu.Lock()
	e.lastError = fmt.Sprintf("%s: %v", component, err)
	e.failedAt = time.Now()
	e.errMu.Unlock()

	metrics.SetReady(e.Ready())
	e.logger.Warn().
		Str("load_component", component).
		Err(err).
		Bool("ready", e.Ready()).
		Msg("load failed")
}

func (e *Engine) clearError() {
	e.errMu.Lock()
	e.lastError = ""
	e.failedAt = time.Time{}
	e.errMu.Unlock()
}

// Ready reports whether both a catalog and a model are loaded.
func (e *Engine) Ready() bool {
	return e.catalog.Load() != nil && e.model.Load() != nil
}

// Catalog returns the active catalog, or nil when none is loaded.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog.Load()
}

// Status returns a snapshot of the engine state.
func (e *Engine) Status() Status {
	s := Status{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}

	if cat := e.catalog.Load(); cat != nil {
		s.CatalogLoaded = true
		s.CatalogSize = cat.Len()
	}
	if m := e.model.Load(); m != nil {
		s.ModelLoaded = true
		s.ModelVersion = m.version
		s.ModelLoadedAt = m.loadedAt
	}
	s.Ready = s.CatalogLoaded && s.ModelLoaded

	e.errMu.RLock()
	s.LastError = e.lastError
	s.LastErrorAt = e.failedAt
	e.errMu.RUnlock()

	return s
}

// Recommend returns the top k movies for userID. k above MaxK is rejected
// with ErrInvalidArgument.
func (e *Engine) Recommend(ctx context.Context, userID, k int) ([]catalog.Movie, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("error", 0, time.Since(start))
		return nil, err
	}

	cat := e.catalog.Load()
	model := e.model.Load()
	if cat == nil || model == nil {
		metrics.RecordRecommendation("not_ready", 0, time.Since(start))
		return nil, ErrNotReady
	}

	if k > e.config.MaxK {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("error", 0, time.Since(start))
		return nil, fmt.Errorf("%w: k must be at most %d, got %d", ErrInvalidArgument, e.config.MaxK, k)
	}

	movies, err := TopK(model.scorer, cat, userID, k)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation("error", 0, time.Since(start))
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation("success", cat.Len(), elapsed)

	e.logger.Debug().
		Int("user_id", userID).
		Int("k", k).
		Int("returned", len(movies)).
		Int("model_version", model.version).
		Dur("latency", elapsed).
		Msg("recommendation complete")

	return movies, nil
}

// Predict returns the raw model score for a single user and movie.
func (e *Engine) Predict(ctx context.Context, userID, movieID int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	model := e.model.Load()
	if model == nil {
		return 0, ErrNotReady
	}

	score := model.scorer.Score(userID, movieID)
	e.logger.Debug().
		Int("user_id", userID).
		Int("movie_id", movieID).
		Float64("score", score).
		Msg("prediction")
	return score, nil
}
