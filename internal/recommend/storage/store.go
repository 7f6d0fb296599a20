// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package storage

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"
)

// Store errors.
var (
	ErrModelNotFound    = errors.New("model not found")
	ErrChecksumMismatch = errors.New("model checksum mismatch")
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// ModelMetadata contains information about a stored model.
type ModelMetadata struct {
	// Name is the model name (e.g., "movie_recommender").
	Name string `json:"name"`

	// Version is the model version (monotonically increasing).
	Version int `json:"version"`

	// TrainedAt is when the model was trained.
	TrainedAt time.Time `json:"trained_at"`

	// SavedAt is when the model was saved.
	SavedAt time.Time `json:"saved_at"`

	// RatingCount is the number of ratings used for training.
	RatingCount int `json:"rating_count"`

	// MovieCount is the number of distinct movies in the training set.
	MovieCount int `json:"movie_count"`

	// UserCount is the number of distinct users in the training set.
	UserCount int `json:"user_count"`

	// RMSE and RSquared are the held-out evaluation results, when known.
	RMSE     float64 `json:"rmse,omitempty"`
	RSquared float64 `json:"r_squared,omitempty"`

	// Checksum is the SHA-256 checksum of the uncompressed model data.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed model size in bytes.
	SizeBytes int64 `json:"size_bytes"`

	// TrainingDurationMS is how long training took.
	TrainingDurationMS int64 `json:"training_duration_ms"`

	// ReadError is set by ListModels when the stored metadata could not be
	// decoded. Only Name and Version are meaningful then.
	ReadError string `json:"read_error,omitempty"`
}

// ModelStore persists versioned model state.
//
// Version 0 passed to Load means "latest". Implementations are safe for
// concurrent use.
type ModelStore interface {
	Save(ctx context.Context, name string, version int, data interface{}, meta ModelMetadata) error
	Load(ctx context.Context, name string, version int, target interface{}) (*ModelMetadata, error)
	LatestVersion(ctx context.Context, name string) (int, error)
	ListModels(ctx context.Context) ([]ModelMetadata, error)
	Delete(ctx context.Context, name string, version int) error
	Prune(ctx context.Context, name string, keepVersions int) error
	Close() error
}

// Open returns the store for backend rooted at path.
func Open(backend, path string) (ModelStore, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendBadger:
		return NewBadgerStore(path)
	default:
		return nil, fmt.Errorf("unknown model store backend %q", backend)
	}
}

// NextVersion returns the version a new model named name should be saved as.
func NextVersion(ctx context.Context, s ModelStore, name string) (int, error) {
	v, err := s.LatestVersion(ctx, name)
	if errors.Is(err, ErrModelNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return v + 1, nil
}

// storedFile is the envelope written by every backend.
type storedFile struct {
	Metadata       ModelMetadata
	CompressedData []byte
}

// encodeModel serializes data into a storedFile envelope and fills the
// checksum, size and identity fields of meta.
//
//nolint:gocritic // meta passed by value is acceptable for this write operation
func encodeModel(name string, version int, data interface{}, meta ModelMetadata) ([]byte, ModelMetadata, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, meta, fmt.Errorf("encode model: %w", err)
	}
	rawData := buf.Bytes()

	hash := sha256.Sum256(rawData)
	meta.Checksum = hex.EncodeToString(hash[:])

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(rawData); err != nil {
		return nil, meta, fmt.Errorf("compress model: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return nil, meta, fmt.Errorf("finalize compression: %w", err)
	}

	meta.SizeBytes = int64(compressed.Len())
	meta.SavedAt = time.Now()
	meta.Name = name
	meta.Version = version

	var out bytes.Buffer
	sf := storedFile{Metadata: meta, CompressedData: compressed.Bytes()}
	if err := gob.NewEncoder(&out).Encode(sf); err != nil {
		return nil, meta, fmt.Errorf("encode envelope: %w", err)
	}
	return out.Bytes(), meta, nil
}

// decodeModel reads an envelope from r, verifies its checksum and decodes
// the model state into target.
func decodeModel(r io.Reader, target interface{}) (*ModelMetadata, error) {
	var sf storedFile
	if err := gob.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("read envelope: %w", err)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(sf.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("decompress model: %w", err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	rawData, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed data: %w", err)
	}

	hash := sha256.Sum256(rawData)
	checksum := hex.EncodeToString(hash[:])
	if checksum != sf.Metadata.Checksum {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, sf.Metadata.Checksum, checksum)
	}

	if err := gob.NewDecoder(bytes.NewReader(rawData)).Decode(target); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	return &sf.Metadata, nil
}

// decodeMetadata reads only the envelope metadata.
func decodeMetadata(r io.Reader) (*ModelMetadata, error) {
	var sf storedFile
	if err := gob.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("read envelope: %w", err)
	}
	return &sf.Metadata, nil
}
