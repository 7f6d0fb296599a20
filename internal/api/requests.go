// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package api

// Request structs bind URL and query parameters so that go-playground/validator
// can check them before a handler touches the engine. The `query` tag names
// the parameter in validation messages.
//
//	req := GenreRequest{Genre: chi.URLParam(r, "genre"), Count: count}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, http.StatusBadRequest, apiErr)
//	    return
//	}

// RecommendationsRequest is GET /movie/recommendations/{userId}.
// TopK above the engine's max_k is rejected by the engine.
type RecommendationsRequest struct {
	UserID int `query:"userId"`
	TopK   int `query:"topK" validate:"gte=0,lte=10000"`
}

// GenreRequest is GET /movie/genre/{genre}.
type GenreRequest struct {
	Genre string `query:"genre" validate:"genre,max=100"`
	Count int    `query:"count" validate:"min=1,max=1000"`
}

// SearchRequest is GET /movie/search.
type SearchRequest struct {
	Query string `query:"query" validate:"required,max=200"`
	Count int    `query:"count" validate:"min=1,max=1000"`
}
