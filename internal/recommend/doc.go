// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package recommend ranks catalog movies for a user.
//
// # Ranking
//
// TopK is the core routine: it asks a Scorer for one relevance score per
// catalog movie, sorts the candidates by descending score and returns the
// first k movies. The sort is stable, so movies with equal scores keep their
// catalog order and repeated calls with the same inputs return identical
// results. Candidates whose movie is missing from the catalog at lookup time
// are skipped rather than reported.
//
// The package never depends on a concrete model. Anything with a
// Score(userID, movieID) method can drive the ranker: a trained
// matrix-factorization model, a remote service client, or a test stub.
//
// # Engine
//
// Engine wraps the ranker for long-running processes. It holds the active
// catalog and scorer behind atomic pointers so a background loader can swap
// in a newly trained model while requests are being served, and it reports
// readiness for health probes.
//
//	engine, _ := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.SetCatalog(cat)
//	engine.SetModel(model, version)
//
//	movies, err := engine.Recommend(ctx, userID, 5)
//
// # Thread Safety
//
// TopK is stateless. Engine is safe for concurrent use.
package recommend
