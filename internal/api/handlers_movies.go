// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movierecommender/internal/catalog"
	"github.com/tomtom215/movierecommender/internal/models"
	"github.com/tomtom215/movierecommender/internal/recommend"
)

// requireCatalog returns the active catalog, answering 503 when none is
// loaded yet.
func (h *Handler) requireCatalog(w http.ResponseWriter) *catalog.Catalog {
	cat := h.engine.Catalog()
	if cat == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeNotReady, "Movie catalog is not loaded yet", nil)
	}
	return cat
}

// respondEngineError maps engine errors to HTTP status codes.
func respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotReady):
		respondError(w, http.StatusServiceUnavailable, ErrCodeNotReady, "Recommendation engine is not ready", nil)
	case errors.Is(err, recommend.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, ErrCodeInvalidArgument, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to compute recommendations", err)
	}
}

// Recommendations godoc
// @Summary Top-K recommendations
// @Description Returns the K highest scoring movies for a user, ordered by descending score. Ties keep catalog order.
// @Tags Movies
// @Produce json
// @Param userId path int true "User ID"
// @Param topK query int false "Number of movies (default 5, at most max_k)" minimum(0)
// @Success 200 {object} models.APIResponse{data=[]models.Movie} "Recommended movies"
// @Failure 400 {object} models.APIResponse "Invalid user ID or topK"
// @Failure 503 {object} models.APIResponse "Catalog or model not loaded"
// @Router /movie/recommendations/{userId} [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}
	start := time.Now()

	userID, err := getIntPathParam(r, "userId")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	topK, err := getIntQuery(r, "topK", h.engine.Config().DefaultK)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	req := RecommendationsRequest{UserID: userID, TopK: topK}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	movies, err := h.engine.Recommend(r.Context(), req.UserID, req.TopK)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondSuccess(w, models.NewMovies(movies), models.Metadata{
		QueryTimeMS:  time.Since(start).Milliseconds(),
		ModelVersion: h.engine.ModelVersion(),
	})
}

// MovieByID godoc
// @Summary Movie by ID
// @Tags Movies
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} models.APIResponse{data=models.Movie}
// @Failure 400 {object} models.APIResponse "Malformed movie ID"
// @Failure 404 {object} models.APIResponse "No movie with that ID"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /movie/id/{movieId} [get]
func (h *Handler) MovieByID(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	movieID, err := getIntPathParam(r, "movieId")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	cat := h.requireCatalog(w)
	if cat == nil {
		return
	}

	movie, ok := cat.ByID(movieID)
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Movie not found", nil)
		return
	}
	respondSuccess(w, models.NewMovie(movie), models.Metadata{})
}

// MoviesByGenre godoc
// @Summary Movies by genre
// @Description Case-insensitive substring match against the genre list, in catalog order.
// @Tags Movies
// @Produce json
// @Param genre path string true "Genre, e.g. Comedy"
// @Param count query int false "Maximum results (1-1000, default 5)"
// @Success 200 {object} models.APIResponse{data=[]models.Movie}
// @Failure 400 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /movie/genre/{genre} [get]
func (h *Handler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	count, err := getIntQuery(r, "count", h.config.API.DefaultCount)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req := GenreRequest{Genre: chi.URLParam(r, "genre"), Count: count}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	cat := h.requireCatalog(w)
	if cat == nil {
		return
	}
	respondSuccess(w, models.NewMovies(cat.FilterByGenre(req.Genre, req.Count)), models.Metadata{})
}

// Genres godoc
// @Summary Distinct genres
// @Description Every genre in the catalog, in order of first appearance.
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.GenreList}
// @Failure 503 {object} models.APIResponse
// @Router /movie/genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}
	cat := h.requireCatalog(w)
	if cat == nil {
		return
	}

	genres := cat.Genres()
	respondSuccess(w, models.GenreList{Genres: genres, Count: len(genres)}, models.Metadata{})
}

// Search godoc
// @Summary Search titles
// @Description Case-insensitive substring search over movie titles.
// @Tags Movies
// @Produce json
// @Param query query string true "Text to look for"
// @Param count query int false "Maximum results (1-1000, default 5)"
// @Success 200 {object} models.APIResponse{data=[]models.Movie}
// @Failure 400 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /movie/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	count, err := getIntQuery(r, "count", h.config.API.DefaultCount)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req := SearchRequest{Query: r.URL.Query().Get("query"), Count: count}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	cat := h.requireCatalog(w)
	if cat == nil {
		return
	}
	respondSuccess(w, models.NewMovies(cat.SearchTitle(req.Query, req.Count)), models.Metadata{})
}

// FeelingLucky godoc
// @Summary Random movies
// @Description A random sample of distinct movies with title and genres only.
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.MovieSummary}
// @Failure 503 {object} models.APIResponse
// @Router /movie/feeling-lucky [get]
func (h *Handler) FeelingLucky(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}
	cat := h.requireCatalog(w)
	if cat == nil {
		return
	}

	// Random output must not be cached by clients or proxies.
	w.Header().Set("Cache-Control", "no-store")
	picks := cat.Sample(h.config.API.LuckyCount, nil)
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     models.NewMovieSummaries(picks),
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Predict godoc
// @Summary Predict a rating
// @Description Raw model score for one user and movie. The movie is recommended when the score rounded to one decimal exceeds the configured threshold.
// @Tags Movies
// @Produce json
// @Param userId path int true "User ID"
// @Param movieId path int true "Movie ID"
// @Success 200 {object} models.APIResponse{data=models.Prediction}
// @Failure 400 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /movie/predict/{userId}/{movieId} [get]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	userID, err := getIntPathParam(r, "userId")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	movieID, err := getIntPathParam(r, "movieId")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	score, err := h.engine.Predict(r.Context(), userID, movieID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	threshold := h.config.Console.Threshold
	respondSuccess(w, models.Prediction{
		UserID:      userID,
		MovieID:     movieID,
		Score:       score,
		Threshold:   threshold,
		Recommended: recommend.IsRecommended(score, threshold),
	}, models.Metadata{ModelVersion: h.engine.ModelVersion()})
}
