// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package storage provides versioned persistence for trained models.
//
// The console trainer saves a new model version after every run; the HTTP
// server polls the same store and hot-swaps newer versions.
//
// # Storage Format
//
// Every backend stores the same envelope:
//
//	structure:
//	  - Metadata (ModelMetadata)
//	  - CompressedData (gzip-compressed gob-encoded model state)
//
// The SHA-256 checksum of the uncompressed state is recorded in the metadata
// and verified on load; a mismatch yields ErrChecksumMismatch.
//
// # Backends
//
// FileStore writes one file per version:
//
//	filename: {model_name}_v{version}.gob.gz
//
// BadgerStore keeps envelopes in BadgerDB under model:{name}:{version} with
// a JSON metadata copy under meta:{name}:{version}. BadgerDB takes an
// exclusive directory lock, so only one process can open a badger store at
// a time.
//
// # Usage Example
//
//	store, err := storage.Open(storage.BackendFile, "Data/models")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	version, _ := storage.NextVersion(ctx, store, "movie_recommender")
//	err = store.Save(ctx, "movie_recommender", version, model.State(), meta)
//
//	var state storage.MFModelState
//	meta, err := store.Load(ctx, "movie_recommender", 0, &state) // 0 = latest
package storage
