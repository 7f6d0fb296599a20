// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package logging provides the process-wide zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	})
//
//	logging.Info().Int("movies", cat.Len()).Msg("catalog loaded")
//	logging.Err(err).Msg("model reload failed")
//	logging.Ctx(ctx).Debug().Msg("recommendations served")
//
// # Configuration
//
// Environment Variables (read by the config package):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// # Request and Correlation IDs
//
// HTTP middleware stores a request ID in the request context; background
// services attach a short correlation ID per reload cycle. Ctx adds both to
// every line it emits.
//
// # slog Bridge
//
// NewSlogLogger adapts the global logger to *slog.Logger for libraries that
// require it (sutureslog).
package logging
