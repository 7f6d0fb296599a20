// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package models

import (
	"time"

	"github.com/tomtom215/movierecommender/internal/catalog"
)

// Movie is the public shape of a catalog entry.
type Movie struct {
	ID     int    `json:"movieId"`
	Title  string `json:"title"`
	Genres string `json:"genres"`
}

// MovieSummary omits the id; returned by the feeling-lucky sample.
type MovieSummary struct {
	Title  string `json:"title"`
	Genres string `json:"genres"`
}

// NewMovie converts a catalog entry.
func NewMovie(m catalog.Movie) Movie {
	return Movie{ID: m.ID, Title: m.Title, Genres: m.Genres}
}

// NewMovies converts a slice of catalog entries. A nil input yields an empty
// slice so the JSON array is never null.
func NewMovies(in []catalog.Movie) []Movie {
	out := make([]Movie, len(in))
	for i, m := range in {
		out[i] = NewMovie(m)
	}
	return out
}

// NewMovieSummaries converts catalog entries to title and genres only.
func NewMovieSummaries(in []catalog.Movie) []MovieSummary {
	out := make([]MovieSummary, len(in))
	for i, m := range in {
		out[i] = MovieSummary{Title: m.Title, Genres: m.Genres}
	}
	return out
}

// Prediction is the raw model score for one user and movie.
type Prediction struct {
	UserID      int     `json:"userId"`
	MovieID     int     `json:"movieId"`
	Score       float64 `json:"score"`
	Threshold   float64 `json:"threshold"`
	Recommended bool    `json:"recommended"`
}

// GenreList is the response of the distinct genres endpoint.
type GenreList struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status        string  `json:"status"`
	Ready         bool    `json:"ready"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	ModelLoaded   bool    `json:"model_loaded"`
	ModelVersion  int     `json:"model_version,omitempty"`
	LastError     string  `json:"last_error,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// StoredModel describes one model version held by the model store.
type StoredModel struct {
	Name        string    `json:"name"`
	Version     int       `json:"version"`
	TrainedAt   time.Time `json:"trained_at"`
	SavedAt     time.Time `json:"saved_at"`
	RatingCount int       `json:"rating_count"`
	MovieCount  int       `json:"movie_count"`
	UserCount   int       `json:"user_count"`
	RMSE        float64   `json:"rmse"`
	RSquared    float64   `json:"r_squared"`
	SizeBytes   int64     `json:"size_bytes"`
	Active      bool      `json:"active"`
	ReadError   string    `json:"read_error,omitempty"`
}

// EngineStatus is the serving state of the recommendation engine.
type EngineStatus struct {
	Ready         bool       `json:"ready"`
	CatalogLoaded bool       `json:"catalog_loaded"`
	CatalogSize   int        `json:"catalog_size"`
	ModelLoaded   bool       `json:"model_loaded"`
	ModelVersion  int        `json:"model_version,omitempty"`
	ModelLoadedAt *time.Time `json:"model_loaded_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	LastErrorAt   *time.Time `json:"last_error_at,omitempty"`
	RequestCount  int64      `json:"request_count"`
	ErrorCount    int64      `json:"error_count"`
}

// ModelStatusResponse combines the engine state with the store contents.
type ModelStatusResponse struct {
	Engine  EngineStatus  `json:"engine"`
	Backend string        `json:"backend"`
	Models  []StoredModel `json:"models"`
}
