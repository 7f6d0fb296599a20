// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package main provides the MovieRecommender HTTP server
//
// @title MovieRecommender API
// @version 1.0
// @description Top-K movie recommendations from a matrix factorization model, plus catalog lookups.
// @description
// @description ## Readiness
// @description
// @description Recommendation and prediction endpoints answer 503 `NOT_READY` until both the
// @description movie catalog and a trained model have been loaded. Poll `/health/ready`.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health probes are exempt.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-10-19T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/movierecommender/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health probes and model status
//
// @tag.name Movies
// @tag.description Recommendations, predictions and catalog queries
package main
