// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage.
const (
	modelKeyPrefix = "model:"
	metaKeyPrefix  = "meta:"
)

// BadgerStore keeps model envelopes in a BadgerDB database.
//
// Each version is written under model:{name}:{version} with the version
// zero-padded so that keys sort numerically. A JSON copy of the metadata is
// kept under meta:{name}:{version} so listings do not decode model blobs.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
}

var _ ModelStore = (*BadgerStore)(nil)

// NewBadgerStore opens a BadgerDB at path.
func NewBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for models: %w", err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// NewBadgerStoreFromDB wraps an already open database. Close leaves db open.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func versionKey(prefix, name string, version int) []byte {
	return []byte(fmt.Sprintf("%s%s:%010d", prefix, name, version))
}

func namePrefix(prefix, name string) []byte {
	return []byte(prefix + name + ":")
}

// Save stores a model with the given name and data.
//
//nolint:gocritic // meta passed by value is acceptable for this write operation
func (s *BadgerStore) Save(ctx context.Context, name string, version int, data interface{}, meta ModelMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if version < 1 {
		return fmt.Errorf("invalid model version %d", version)
	}

	payload, stored, err := encodeModel(name, version, data, meta)
	if err != nil {
		return err
	}
	metaJSON, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(versionKey(modelKeyPrefix, name, version), payload); err != nil {
			return fmt.Errorf("write model: %w", err)
		}
		if err := txn.Set(versionKey(metaKeyPrefix, name, version), metaJSON); err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
		return nil
	})
}

// Load loads a model by name and version.
// If version is 0, loads the latest version.
func (s *BadgerStore) Load(ctx context.Context, name string, version int, target interface{}) (*ModelMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if version == 0 {
		latest, err := s.LatestVersion(ctx, name)
		if err != nil {
			return nil, err
		}
		version = latest
	}

	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(versionKey(modelKeyPrefix, name, version))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
		}
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return decodeModel(bytes.NewReader(payload), target)
}

// LatestVersion returns the latest version number for a model.
func (s *BadgerStore) LatestVersion(ctx context.Context, name string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	versions, err := s.versions(name)
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return versions[len(versions)-1], nil
}

// versions returns the stored versions of name in ascending order.
func (s *BadgerStore) versions(name string) ([]int, error) {
	var versions []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := namePrefix(metaKeyPrefix, name)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw := strings.TrimPrefix(string(it.Item().Key()), string(prefix))
			v, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			versions = append(versions, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan model versions: %w", err)
	}
	return versions, nil
}

// ListModels returns metadata for the latest version of every stored model.
func (s *BadgerStore) ListModels(ctx context.Context) ([]ModelMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	latest := make(map[string]ModelMetadata)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(metaKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var meta ModelMetadata
				if err := json.Unmarshal(val, &meta); err != nil {
					return err
				}
				if cur, ok := latest[meta.Name]; !ok || meta.Version > cur.Version {
					latest[meta.Name] = meta
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	models := make([]ModelMetadata, 0, len(latest))
	for _, m := range latest {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}

// Delete removes a specific model version.
func (s *BadgerStore) Delete(ctx context.Context, name string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := versionKey(modelKeyPrefix, name, version)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s v%d", ErrModelNotFound, name, version)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete model: %w", err)
		}
		if err := txn.Delete(versionKey(metaKeyPrefix, name, version)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete metadata: %w", err)
		}
		return nil
	})
}

// Prune removes old model versions, keeping only the latest N versions.
func (s *BadgerStore) Prune(ctx context.Context, name string, keepVersions int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if keepVersions < 1 {
		keepVersions = 1
	}

	versions, err := s.versions(name)
	if err != nil {
		return err
	}
	if len(versions) <= keepVersions {
		return nil
	}

	stale := versions[:len(versions)-keepVersions]
	return s.db.Update(func(txn *badger.Txn) error {
		for _, v := range stale {
			if err := txn.Delete(versionKey(modelKeyPrefix, name, v)); err != nil {
				return fmt.Errorf("prune %s v%d: %w", name, v, err)
			}
			if err := txn.Delete(versionKey(metaKeyPrefix, name, v)); err != nil {
				return fmt.Errorf("prune %s v%d metadata: %w", name, v, err)
			}
		}
		return nil
	})
}

// Close closes the underlying BadgerDB if this store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB && s.db != nil {
		return s.db.Close()
	}
	return nil
}
