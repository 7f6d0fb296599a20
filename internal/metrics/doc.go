// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
are exposed by the HTTP server at /metrics.

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Ranking Metrics:
  - recommend_requests_total: Top-k calls (counter)
    Labels: result (success, not_ready, error)
  - recommend_duration_seconds: Catalog scoring and sort time (histogram)
  - recommend_scored_movies_total: Scorer invocations (counter)

Catalog and Model Metrics:
  - catalog_movies: Movies in the loaded catalog (gauge)
  - model_version: Loaded model version, 0 when none (gauge)
  - model_loads_total: Load attempts (counter)
    Labels: result (success, failure, rejected, unchanged)
  - model_training_duration_seconds: Training run duration (histogram)
  - service_ready: Readiness flag (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

# Example Alert

	alert: RecommenderNotReady
	expr: service_ready == 0
	for: 5m
*/
package metrics
