// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package models defines the JSON shapes served by the HTTP API: the
// APIResponse envelope and the movie, prediction, health and model status
// payloads carried in its data field.
package models
