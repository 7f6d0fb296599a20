// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package middleware provides the HTTP middleware used by the API router.

Key Components:

  - RequestID: X-Request-ID propagation plus a per-request correlation ID
  - PrometheusMetrics: request count, latency and in-flight gauges labelled
    by chi route pattern
  - AccessLog: one zerolog line per request, promoted to warn when slow
  - Compression: gzip for clients that accept it

All four use the func(http.HandlerFunc) http.HandlerFunc shape; the api
package adapts them to chi with a small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog(middleware.DefaultSlowRequestThreshold)))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

PrometheusMetrics reads the route pattern after the handler returns, so it
must be installed on the chi router (not wrapped around it) for the pattern
to be populated.
*/
package middleware
