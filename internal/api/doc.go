// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package api exposes the recommendation engine and the movie catalog over
HTTP using the chi router.

Every response uses the same envelope:

	{
	  "status": "success" | "error",
	  "data": ...,
	  "metadata": {"timestamp": "...", "query_time_ms": 1, "model_version": 3},
	  "error": {"code": "NOT_READY", "message": "..."}
	}

Routes:

	GET /api/v1/movie/recommendations/{userId}?topK=5
	GET /api/v1/movie/id/{movieId}
	GET /api/v1/movie/genre/{genre}?count=5
	GET /api/v1/movie/genres
	GET /api/v1/movie/search?query=toy&count=5
	GET /api/v1/movie/feeling-lucky
	GET /api/v1/movie/predict/{userId}/{movieId}
	GET /api/v1/model
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics
	GET /swagger/*

Query parameters are bound into request structs (requests.go) and checked
with the shared validator before the engine is called. Until both a catalog
and a model are loaded, engine-backed routes answer 503 NOT_READY and
/health/ready reports which half is missing.

The /api/v1 group is rate limited per client IP with go-chi/httprate;
health probes are not.
*/
package api
