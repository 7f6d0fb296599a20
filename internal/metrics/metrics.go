// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Ranking Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of top-k ranking calls",
		},
		[]string{"result"}, // "success", "not_ready", "error"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent scoring and ranking the catalog for one user",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RecommendScoredMovies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_scored_movies_total",
			Help: "Total number of scorer invocations across all ranking calls",
		},
	)

	// Catalog and Model Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_version",
			Help: "Version of the currently loaded scoring model (0 = none)",
		},
	)

	ModelLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_loads_total",
			Help: "Total number of model load attempts",
		},
		[]string{"result"}, // "success", "failure", "rejected", "unchanged"
	)

	ModelTrainingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_training_duration_seconds",
			Help:    "Duration of matrix factorization training runs",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
	)

	ServiceReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "service_ready",
			Help: "1 when catalog and model are both loaded, 0 otherwise",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one ranking call. scored is the number of
// movies passed through the scorer.
func RecordRecommendation(result string, scored int, duration time.Duration) {
	RecommendRequests.WithLabelValues(result).Inc()
	if scored > 0 {
		RecommendScoredMovies.Add(float64(scored))
	}
	if result == "success" {
		RecommendDuration.Observe(duration.Seconds())
	}
}

// RecordModelLoad records a model load attempt.
func RecordModelLoad(result string) {
	ModelLoads.WithLabelValues(result).Inc()
}

// RecordTraining records a training run.
func RecordTraining(duration time.Duration) {
	ModelTrainingDuration.Observe(duration.Seconds())
}

// SetReady mirrors the readiness flag into a gauge.
func SetReady(ready bool) {
	if ready {
		ServiceReady.Set(1)
		return
	}
	ServiceReady.Set(0)
}

// RecordBreakerTransition updates breaker gauges on a state change.
// States follow gobreaker's ordering: closed, half-open, open.
func RecordBreakerTransition(name, from, to string, toValue int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(toValue))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
