// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/movierecommender/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which AccessLog warns.
const DefaultSlowRequestThreshold = 500 * time.Millisecond

// AccessLog writes one structured line per request: debug level normally,
// warn level when the request took longer than slow. It must run inside
// RequestID so the line carries the request and correlation IDs.
func AccessLog(slow time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next(sw, r)

			elapsed := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			if elapsed > slow {
				event = logger.Warn().Dur("threshold", slow)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", sw.statusCode).
				Dur("duration", elapsed).
				Msg("http request")
		}
	}
}
