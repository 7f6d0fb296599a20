// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package algorithms implements the scoring models behind the ranker.
//
// # Matrix Factorization
//
// MatrixFactorization learns user and movie latent factors plus per-user and
// per-movie biases from explicit ratings using SGD:
//
//	mf := algorithms.NewMatrixFactorization(algorithms.DefaultMFConfig())
//	if err := mf.Train(ctx, train); err != nil {
//	    return err
//	}
//	metrics, err := algorithms.Evaluate(mf, test)
//
// A trained model satisfies recommend.Scorer and can be persisted with
// State and restored with NewMatrixFactorizationFromState.
//
// # Determinism
//
// Initialization and per-epoch shuffling use a math/rand source seeded from
// MFConfig.Seed, so training the same data with the same configuration
// produces the same model.
//
// # Thread Safety
//
// Training acquires an exclusive lock while scoring uses a shared lock.
package algorithms
