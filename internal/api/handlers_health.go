// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/movierecommender/internal/models"
	"github.com/tomtom215/movierecommender/internal/recommend"
	"github.com/tomtom215/movierecommender/internal/recommend/storage"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of whether a model is
// loaded.
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of catalog or model state.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK once both the movie catalog and a model are loaded. Returns 503 until then, or while only a failed load has been attempted.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthResponse} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	st := h.engine.Status()
	statusCode := http.StatusOK
	status := "ready"
	if !st.Ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, statusCode, &models.APIResponse{
		Status: "success",
		Data: models.HealthResponse{
			Status:        status,
			Ready:         st.Ready,
			CatalogLoaded: st.CatalogLoaded,
			ModelLoaded:   st.ModelLoaded,
			ModelVersion:  st.ModelVersion,
			LastError:     st.LastError,
			UptimeSeconds: time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// ModelStatus godoc
// @Summary Model status
// @Description Engine state plus the metadata of every stored model version. The version currently serving is flagged active.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ModelStatusResponse}
// @Failure 503 {object} models.APIResponse "Model store unavailable"
// @Router /model [get]
func (h *Handler) ModelStatus(w http.ResponseWriter, r *http.Request) {
	if !requireGET(w, r) {
		return
	}

	resp := models.ModelStatusResponse{
		Engine:  engineStatus(h.engine.Status()),
		Backend: h.config.Model.Backend,
		Models:  []models.StoredModel{},
	}

	if h.models != nil {
		stored, err := h.models.ListModels(r.Context())
		if err != nil {
			respondError(w, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "Failed to list stored models", err)
			return
		}
		resp.Models = storedModels(stored, h.config.Model.Name, resp.Engine.ModelVersion)
	}

	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, resp, models.Metadata{ModelVersion: resp.Engine.ModelVersion})
}

func engineStatus(st recommend.Status) models.EngineStatus {
	out := models.EngineStatus{
		Ready:         st.Ready,
		CatalogLoaded: st.CatalogLoaded,
		CatalogSize:   st.CatalogSize,
		ModelLoaded:   st.ModelLoaded,
		ModelVersion:  st.ModelVersion,
		LastError:     st.LastError,
		RequestCount:  st.RequestCount,
		ErrorCount:    st.ErrorCount,
	}
	if !st.ModelLoadedAt.IsZero() {
		t := st.ModelLoadedAt
		out.ModelLoadedAt = &t
	}
	if !st.LastErrorAt.IsZero() {
		t := st.LastErrorAt
		out.LastErrorAt = &t
	}
	return out
}

func storedModels(in []storage.ModelMetadata, activeName string, activeVersion int) []models.StoredModel {
	out := make([]models.StoredModel, len(in))
	for i, m := range in {
		out[i] = models.StoredModel{
			Name:        m.Name,
			Version:     m.Version,
			TrainedAt:   m.TrainedAt,
			SavedAt:     m.SavedAt,
			RatingCount: m.RatingCount,
			MovieCount:  m.MovieCount,
			UserCount:   m.UserCount,
			RMSE:        m.RMSE,
			RSquared:    m.RSquared,
			SizeBytes:   m.SizeBytes,
			Active:      m.Name == activeName && m.Version == activeVersion,
			ReadError:   m.ReadError,
		}
	}
	return out
}
