// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package algorithms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/tomtom215/movierecommender/internal/ratings"
	"github.com/tomtom215/movierecommender/internal/recommend/storage"
)

// ErrNoTrainingData is returned by Train when given no ratings.
var ErrNoTrainingData = errors.New("no training ratings")

// MFConfig contains configuration for matrix factorization.
type MFConfig struct {
	// Factors is the dimension of the latent factor vectors.
	// Default: 100.
	Factors int `json:"factors"`

	// Iterations is the number of SGD passes over the training set.
	// Default: 20.
	Iterations int `json:"iterations"`

	// LearningRate is the SGD step size.
	// Default: 0.01.
	LearningRate float64 `json:"learning_rate"`

	// Regularization is the L2 penalty on factors and biases.
	// Default: 0.05.
	Regularization float64 `json:"regularization"`

	// Seed for reproducible training.
	// If 0, uses a default seed.
	Seed int64 `json:"seed"`
}

// DefaultMFConfig returns default matrix factorization configuration.
func DefaultMFConfig() MFConfig {
	return MFConfig{
		Factors:        100,
		Iterations:     20,
		LearningRate:   0.01,
		Regularization: 0.05,
		Seed:           42,
	}
}

// TrainingStats describes the most recent training run.
type TrainingStats struct {
	Ratings   int           `json:"ratings"`
	Users     int           `json:"users"`
	Movies    int           `json:"movies"`
	TrainRMSE float64       `json:"train_rmse"`
	Duration  time.Duration `json:"duration"`
}

// MatrixFactorization is a biased latent factor model for explicit ratings:
//
//	score(u, m) = mean + b_u + b_m + p_u · q_m
//
// It is fitted with stochastic gradient descent on squared error. Users or
// movies absent from training contribute zero bias and no interaction term,
// so an unknown pair scores the global mean.
type MatrixFactorization struct {
	lifecycle
	config MFConfig

	globalMean float64

	// userIndex maps user ID to matrix row
	userIndex map[int]int

	// movieIndex maps movie ID to matrix row
	movieIndex map[int]int

	userFactors  [][]float64
	movieFactors [][]float64
	userBias     []float64
	movieBias    []float64

	stats TrainingStats
}

// NewMatrixFactorization creates an untrained model. Non-positive fields of
// cfg fall back to their defaults.
func NewMatrixFactorization(cfg MFConfig) *MatrixFactorization {
	def := DefaultMFConfig()
	if cfg.Factors <= 0 {
		cfg.Factors = def.Factors
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = def.Iterations
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = def.LearningRate
	}
	if cfg.Regularization < 0 {
		cfg.Regularization = def.Regularization
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}

	return &MatrixFactorization{
		lifecycle:  newLifecycle("matrix_factorization"),
		config:     cfg,
		userIndex:  make(map[int]int),
		movieIndex: make(map[int]int),
	}
}

// Config returns the effective configuration.
func (m *MatrixFactorization) Config() MFConfig {
	return m.config
}

// Stats returns statistics from the last training run.
func (m *MatrixFactorization) Stats() TrainingStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

// Train fits the model to rs, replacing any previous state.
//
//nolint:gocritic // rangeValCopy is acceptable for small rating structs
func (m *MatrixFactorization) Train(ctx context.Context, rs []ratings.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ContextCancelled(ctx) {
		return ctx.Err()
	}
	if len(rs) == 0 {
		return ErrNoTrainingData
	}

	start := time.Now()

	userIndex := make(map[int]int)
	movieIndex := make(map[int]int)
	var sum float64
	for _, r := range rs {
		if _, ok := userIndex[r.UserID]; !ok {
			userIndex[r.UserID] = len(userIndex)
		}
		if _, ok := movieIndex[r.MovieID]; !ok {
			movieIndex[r.MovieID] = len(movieIndex)
		}
		sum += r.Label
	}
	mean := sum / float64(len(rs))

	numFactors := m.config.Factors

	// Initialize factor matrices with small random values
	//nolint:gosec // G404: math/rand is acceptable for ML initialization (not security)
	rng := rand.New(rand.NewSource(m.config.Seed))
	userFactors := randomMatrix(rng, len(userIndex), numFactors)
	movieFactors := randomMatrix(rng, len(movieIndex), numFactors)
	userBias := make([]float64, len(userIndex))
	movieBias := make([]float64, len(movieIndex))

	type sample struct {
		u, i  int
		label float64
	}
	samples := make([]sample, len(rs))
	for k, r := range rs {
		samples[k] = sample{u: userIndex[r.UserID], i: movieIndex[r.MovieID], label: r.Label}
	}

	lr := m.config.LearningRate
	reg := m.config.Regularization

	for epoch := 0; epoch < m.config.Iterations; epoch++ {
		if ContextCancelled(ctx) {
			return ctx.Err()
		}

		rng.Shuffle(len(samples), func(a, b int) {
			samples[a], samples[b] = samples[b], samples[a]
		})

		for _, s := range samples {
			pu := userFactors[s.u]
			qi := movieFactors[s.i]

			pred := mean + userBias[s.u] + movieBias[s.i] + dot(pu, qi)
			e := s.label - pred

			userBias[s.u] += lr * (e - reg*userBias[s.u])
			movieBias[s.i] += lr * (e - reg*movieBias[s.i])

			for f := 0; f < numFactors; f++ {
				puf := pu[f]
				qif := qi[f]
				pu[f] += lr * (e*qif - reg*puf)
				qi[f] += lr * (e*puf - reg*qif)
			}
		}

		if epoch > 0 && epoch%10 == 0 {
			lr *= 0.95
		}
	}

	var sqErr float64
	for _, s := range samples {
		e := s.label - (mean + userBias[s.u] + movieBias[s.i] + dot(userFactors[s.u], movieFactors[s.i]))
		sqErr += e * e
	}

	m.globalMean = mean
	m.userIndex = userIndex
	m.movieIndex = movieIndex
	m.userFactors = userFactors
	m.movieFactors = movieFactors
	m.userBias = userBias
	m.movieBias = movieBias
	m.stats = TrainingStats{
		Ratings:   len(rs),
		Users:     len(userIndex),
		Movies:    len(movieIndex),
		TrainRMSE: math.Sqrt(sqErr / float64(len(samples))),
		Duration:  time.Since(start),
	}
	m.fitted(time.Now())
	return nil
}

// Score predicts the rating userID would give movieID.
func (m *MatrixFactorization) Score(userID, movieID int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	score := m.globalMean
	ui, userKnown := m.userIndex[userID]
	ii, movieKnown := m.movieIndex[movieID]

	if userKnown {
		score += m.userBias[ui]
	}
	if movieKnown {
		score += m.movieBias[ii]
	}
	if userKnown && movieKnown {
		score += dot(m.userFactors[ui], m.movieFactors[ii])
	}
	return score
}

// KnowsUser reports whether userID appeared in the training data.
func (m *MatrixFactorization) KnowsUser(userID int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.userIndex[userID]
	return ok
}

// State returns a deep copy of the model for persistence.
func (m *MatrixFactorization) State() storage.MFModelState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return storage.MFModelState{
		GlobalMean:     m.globalMean,
		UserIndex:      copyIndex(m.userIndex),
		MovieIndex:     copyIndex(m.movieIndex),
		UserFactors:    copyMatrix(m.userFactors),
		MovieFactors:   copyMatrix(m.movieFactors),
		UserBias:       append([]float64(nil), m.userBias...),
		MovieBias:      append([]float64(nil), m.movieBias...),
		Factors:        m.config.Factors,
		Iterations:     m.config.Iterations,
		LearningRate:   m.config.LearningRate,
		Regularization: m.config.Regularization,
		Seed:           m.config.Seed,
	}
}

// NewMatrixFactorizationFromState rebuilds a trained model from persisted state.
//
//nolint:gocritic // hugeParam: state passed by value mirrors storage.Load usage
func NewMatrixFactorizationFromState(state storage.MFModelState) (*MatrixFactorization, error) {
	if err := validateState(&state); err != nil {
		return nil, fmt.Errorf("invalid model state: %w", err)
	}

	m := NewMatrixFactorization(MFConfig{
		Factors:        state.Factors,
		Iterations:     state.Iterations,
		LearningRate:   state.LearningRate,
		Regularization: state.Regularization,
		Seed:           state.Seed,
	})
	m.globalMean = state.GlobalMean
	m.userIndex = copyIndex(state.UserIndex)
	m.movieIndex = copyIndex(state.MovieIndex)
	m.userFactors = copyMatrix(state.UserFactors)
	m.movieFactors = copyMatrix(state.MovieFactors)
	m.userBias = append([]float64(nil), state.UserBias...)
	m.movieBias = append([]float64(nil), state.MovieBias...)
	m.stats = TrainingStats{Users: len(state.UserIndex), Movies: len(state.MovieIndex)}
	m.fitted(time.Now())
	return m, nil
}

func validateState(s *storage.MFModelState) error {
	if s.Factors <= 0 {
		return fmt.Errorf("factors must be positive, got %d", s.Factors)
	}
	if len(s.UserFactors) != len(s.UserIndex) || len(s.UserBias) != len(s.UserIndex) {
		return fmt.Errorf("user dimensions disagree: index %d, factors %d, bias %d",
			len(s.UserIndex), len(s.UserFactors), len(s.UserBias))
	}
	if len(s.MovieFactors) != len(s.MovieIndex) || len(s.MovieBias) != len(s.MovieIndex) {
		return fmt.Errorf("movie dimensions disagree: index %d, factors %d, bias %d",
			len(s.MovieIndex), len(s.MovieFactors), len(s.MovieBias))
	}
	for _, rows := range [][][]float64{s.UserFactors, s.MovieFactors} {
		for _, row := range rows {
			if len(row) != s.Factors {
				return fmt.Errorf("factor row has %d entries, want %d", len(row), s.Factors)
			}
		}
	}
	for id, row := range s.UserIndex {
		if row < 0 || row >= len(s.UserFactors) {
			return fmt.Errorf("user %d maps to row %d out of range", id, row)
		}
	}
	for id, row := range s.MovieIndex {
		if row < 0 || row >= len(s.MovieFactors) {
			return fmt.Errorf("movie %d maps to row %d out of range", id, row)
		}
	}
	return nil
}

func randomMatrix(rng *rand.Rand, rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for r := range m {
		m[r] = make([]float64, cols)
		for c := range m[r] {
			m[r][c] = (rng.Float64() - 0.5) * 0.01
		}
	}
	return m
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func copyIndex(in map[int]int) map[int]int {
	out := make(map[int]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyMatrix(in [][]float64) [][]float64 {
	out := make([][]float64, len(in))
	for i, row := range in {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
