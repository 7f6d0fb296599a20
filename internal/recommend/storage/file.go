// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/tomtom215/movierecommender/internal/logging"
)

const modelFileSuffix = ".gob.gz"

// FileStore keeps one file per model version in a directory.
//
// The directory is rescanned on every lookup so that versions written by
// another process (the console trainer) become visible to a running server.
type FileStore struct {
	baseDir string
	mu      sync.RWMutex
}

var _ ModelStore = (*FileStore)(nil)

// NewFileStore creates a file-backed model store at the given directory.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for model storage
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string {
	return s.baseDir
}

// scanVersions returns the stored versions per model name.
func (s *FileStore) scanVersions() (map[string][]int, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	versions := make(map[string][]int)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), modelFileSuffix) {
			continue
		}
		name, version := parseModelFilename(strings.TrimSuffix(entry.Name(), modelFileSuffix))
		if name == "" {
			continue
		}
		versions[name] = append(versions[name], version)
	}

	for name := range versions {
		sort.Sort(sort.Reverse(sort.IntSlice(versions[name])))
	}
	return versions, nil
}

// parseModelFilename extracts the model name and version from "movie_recommender_v3".
func parseModelFilename(name string) (modelName string, version int) {
	idx := strings.LastIndex(name, "_v")
	if idx <= 0 {
		return "", 0
	}
	version, err := strconv.Atoi(name[idx+2:])
	if err != nil || version < 1 {
		return "", 0
	}
	return name[:idx], version
}

// Save stores a model with the given name and data. The file is written to a
// temporary name and renamed into place so readers never see partial data.
//
//nolint:gocritic // meta passed by value is acceptable for this write operation
func (s *FileStore) Save(ctx context.Context, name string, version int, data interface{}, meta ModelMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if version < 1 {
		return fmt.Errorf("invalid model version %d", version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload, _, err := encodeModel(name, version, data, meta)
	if err != nil {
		return err
	}

	final := s.modelPath(name, version)
	tmp, err := os.CreateTemp(s.baseDir, ".tmp-"+name+"-*")
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close() //nolint:errcheck // write error already reported
		return fmt.Errorf("write model file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close model file: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		return fmt.Errorf("install model file: %w", err)
	}
	return nil
}

// Load loads a model by name and version.
// If version is 0, loads the latest version.
func (s *FileStore) Load(ctx context.Context, name string, version int, target interface{}) (*ModelMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if version == 0 {
		latest, err := s.latestLocked(name)
		if err != nil {
			return nil, err
		}
		version = latest
	}

	f, err := os.Open(s.modelPath(name, version)) //nolint:gosec // filename is constructed from trusted name parameter
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
		}
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after read is not actionable

	return decodeModel(f, target)
}

// LatestVersion returns the latest version number for a model.
func (s *FileStore) LatestVersion(ctx context.Context, name string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestLocked(name)
}

func (s *FileStore) latestLocked(name string) (int, error) {
	versions, err := s.scanVersions()
	if err != nil {
		return 0, fmt.Errorf("scan models: %w", err)
	}
	vs := versions[name]
	if len(vs) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return vs[0], nil
}

// ListModels returns metadata for the latest version of every stored model.
func (s *FileStore) ListModels(ctx context.Context) ([]ModelMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	versions, err := s.scanVersions()
	if err != nil {
		return nil, fmt.Errorf("scan models: %w", err)
	}

	models := make([]ModelMetadata, 0, len(versions))
	for name, vs := range versions {
		meta, err := s.readMetadata(name, vs[0])
		if err != nil {
			logging.Warn().Err(err).
				Str("model", name).
				Int("version", vs[0]).
				Msg("unreadable model metadata")
			models = append(models, ModelMetadata{Name: name, Version: vs[0], ReadError: err.Error()})
			continue
		}
		models = append(models, *meta)
	}

	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}

func (s *FileStore) readMetadata(name string, version int) (*ModelMetadata, error) {
	f, err := os.Open(s.modelPath(name, version)) //nolint:gosec // filename is constructed from trusted name parameter
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after read is not actionable
	return decodeMetadata(f)
}

// Delete removes a specific model version.
func (s *FileStore) Delete(ctx context.Context, name string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.modelPath(name, version)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
		}
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}

// Prune removes old model versions, keeping only the latest N versions.
func (s *FileStore) Prune(ctx context.Context, name string, keepVersions int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if keepVersions < 1 {
		keepVersions = 1
	}

	versions, err := s.scanVersions()
	if err != nil {
		return fmt.Errorf("scan models: %w", err)
	}

	vs := versions[name]
	for i := keepVersions; i < len(vs); i++ {
		if err := os.Remove(s.modelPath(name, vs[i])); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("prune %s v%d: %w", name, vs[i], err)
		}
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// modelPath returns the file path for a model.
func (s *FileStore) modelPath(name string, version int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s_v%d%s", name, version, modelFileSuffix))
}
