// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package storage

import "encoding/gob"

// MFModelState represents the serializable state of a matrix factorization model.
type MFModelState struct {
	// GlobalMean is the mean training rating.
	GlobalMean float64

	// UserIndex and MovieIndex map external IDs to factor rows.
	UserIndex  map[int]int
	MovieIndex map[int]int

	// UserFactors and MovieFactors are the latent factor matrices.
	UserFactors  [][]float64
	MovieFactors [][]float64

	// UserBias and MovieBias are indexed like the factor rows.
	UserBias  []float64
	MovieBias []float64

	// Hyper-parameters the model was trained with.
	Factors        int
	Iterations     int
	LearningRate   float64
	Regularization float64
	Seed           int64
}

// Register gob types for serialization.
//
//nolint:gochecknoinits // gob.Register must be called in init for type registration
func init() {
	gob.Register(MFModelState{})
	gob.Register(ModelMetadata{})
	gob.Register(storedFile{})
}
