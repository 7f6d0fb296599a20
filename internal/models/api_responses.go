// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package models

import (
	"time"
)

// APIResponse is the envelope of every JSON response.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": [{"movieId": 2, "title": "Jumanji (1995)", "genres": "Adventure|Children|Fantasy"}],
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z", "query_time_ms": 3}
//	}
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z"},
//	  "error": {"code": "NOT_READY", "message": "No model loaded yet"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata accompanies every response.
type Metadata struct {
	Timestamp    time.Time `json:"timestamp"`
	QueryTimeMS  int64     `json:"query_time_ms,omitempty"`
	ModelVersion int       `json:"model_version,omitempty"`
}

// APIError is a machine-readable error code plus a message for humans.
//
// Codes in use:
//   - VALIDATION_ERROR: bad query or path parameter
//   - INVALID_ARGUMENT: rejected by the ranker (negative k)
//   - NOT_FOUND: unknown movie id
//   - NOT_READY: catalog or model not loaded yet
//   - METHOD_NOT_ALLOWED
//   - INTERNAL_ERROR
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
