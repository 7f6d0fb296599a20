// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package storage

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func newInMemoryBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerStoreFromDB(db)
}

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return s
}

// backends runs fn against every ModelStore implementation.
func backends(t *testing.T, fn func(t *testing.T, s ModelStore)) {
	t.Helper()
	t.Run("file", func(t *testing.T) {
		t.Parallel()
		fn(t, newFileStore(t))
	})
	t.Run("badger", func(t *testing.T) {
		t.Parallel()
		fn(t, newInMemoryBadgerStore(t))
	})
}

func sampleState() MFModelState {
	return MFModelState{
		GlobalMean:     3.5,
		UserIndex:      map[int]int{6: 0, 7: 1},
		MovieIndex:     map[int]int{10: 0, 11: 1, 12: 2},
		UserFactors:    [][]float64{{0.1, 0.2}, {0.3, -0.4}},
		MovieFactors:   [][]float64{{0.5, 0.6}, {-0.7, 0.8}, {0.9, 1.0}},
		UserBias:       []float64{0.1, -0.1},
		MovieBias:      []float64{0.2, 0, -0.2},
		Factors:        2,
		Iterations:     20,
		LearningRate:   0.01,
		Regularization: 0.05,
		Seed:           42,
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx := context.Background()
		trainedAt := time.Now().Add(-time.Minute)

		meta := ModelMetadata{
			TrainedAt:   trainedAt,
			RatingCount: 1000,
			MovieCount:  3,
			UserCount:   2,
			RMSE:        0.98,
			RSquared:    0.41,
		}
		if err := s.Save(ctx, "movie_recommender", 1, sampleState(), meta); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		var loaded MFModelState
		got, err := s.Load(ctx, "movie_recommender", 1, &loaded)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if got.Name != "movie_recommender" || got.Version != 1 {
			t.Errorf("metadata identity = %s v%d", got.Name, got.Version)
		}
		if got.RatingCount != 1000 || got.RMSE != 0.98 {
			t.Errorf("metadata = %+v", got)
		}
		if got.Checksum == "" || got.SizeBytes == 0 || got.SavedAt.IsZero() {
			t.Errorf("derived metadata not filled: %+v", got)
		}

		want := sampleState()
		if loaded.GlobalMean != want.GlobalMean || loaded.MovieFactors[2][1] != 1.0 || loaded.UserIndex[7] != 1 {
			t.Errorf("loaded state = %+v", loaded)
		}
	})
}

func TestStore_LoadLatest(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx := context.Background()

		for _, v := range []int{1, 3, 2} {
			st := sampleState()
			st.GlobalMean = float64(v)
			if err := s.Save(ctx, "mf", v, st, ModelMetadata{}); err != nil {
				t.Fatalf("Save(v%d) error = %v", v, err)
			}
		}

		latest, err := s.LatestVersion(ctx, "mf")
		if err != nil || latest != 3 {
			t.Fatalf("LatestVersion() = %d, %v; want 3", latest, err)
		}

		var loaded MFModelState
		meta, err := s.Load(ctx, "mf", 0, &loaded)
		if err != nil {
			t.Fatalf("Load(latest) error = %v", err)
		}
		if meta.Version != 3 || loaded.GlobalMean != 3 {
			t.Errorf("Load(latest) = v%d mean %v", meta.Version, loaded.GlobalMean)
		}

		next, err := NextVersion(ctx, s, "mf")
		if err != nil || next != 4 {
			t.Errorf("NextVersion() = %d, %v; want 4", next, err)
		}
	})
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx := context.Background()

		if _, err := s.LatestVersion(ctx, "missing"); !errors.Is(err, ErrModelNotFound) {
			t.Errorf("LatestVersion() error = %v, want ErrModelNotFound", err)
		}
		var st MFModelState
		if _, err := s.Load(ctx, "missing", 0, &st); !errors.Is(err, ErrModelNotFound) {
			t.Errorf("Load(latest) error = %v, want ErrModelNotFound", err)
		}
		if _, err := s.Load(ctx, "missing", 4, &st); !errors.Is(err, ErrModelNotFound) {
			t.Errorf("Load(v4) error = %v, want ErrModelNotFound", err)
		}
		if err := s.Delete(ctx, "missing", 1); !errors.Is(err, ErrModelNotFound) {
			t.Errorf("Delete() error = %v, want ErrModelNotFound", err)
		}

		next, err := NextVersion(ctx, s, "missing")
		if err != nil || next != 1 {
			t.Errorf("NextVersion() = %d, %v; want 1", next, err)
		}
	})
}

func TestStore_ListModels(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx := context.Background()

		_ = s.Save(ctx, "beta", 1, sampleState(), ModelMetadata{})
		_ = s.Save(ctx, "beta", 2, sampleState(), ModelMetadata{RatingCount: 7})
		_ = s.Save(ctx, "alpha", 1, sampleState(), ModelMetadata{})

		models, err := s.ListModels(ctx)
		if err != nil {
			t.Fatalf("ListModels() error = %v", err)
		}
		if len(models) != 2 {
			t.Fatalf("len(ListModels()) = %d, want 2", len(models))
		}
		if models[0].Name != "alpha" || models[1].Name != "beta" {
			t.Errorf("order = %s, %s", models[0].Name, models[1].Name)
		}
		if models[1].Version != 2 || models[1].RatingCount != 7 {
			t.Errorf("beta = %+v, want latest version", models[1])
		}
	})
}

func TestStore_DeleteAndPrune(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx := context.Background()

		for v := 1; v <= 5; v++ {
			if err := s.Save(ctx, "mf", v, sampleState(), ModelMetadata{}); err != nil {
				t.Fatal(err)
			}
		}

		if err := s.Delete(ctx, "mf", 5); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if v, _ := s.LatestVersion(ctx, "mf"); v != 4 {
			t.Errorf("LatestVersion() after delete = %d, want 4", v)
		}

		if err := s.Prune(ctx, "mf", 2); err != nil {
			t.Fatalf("Prune() error = %v", err)
		}

		var st MFModelState
		for v, wantOK := range map[int]bool{1: false, 2: false, 3: true, 4: true} {
			_, err := s.Load(ctx, "mf", v, &st)
			if gotOK := err == nil; gotOK != wantOK {
				t.Errorf("Load(v%d) err = %v, want present=%v", v, err, wantOK)
			}
		}

		// keepVersions below one keeps the latest
		if err := s.Prune(ctx, "mf", 0); err != nil {
			t.Fatal(err)
		}
		if v, err := s.LatestVersion(ctx, "mf"); err != nil || v != 4 {
			t.Errorf("LatestVersion() after prune(0) = %d, %v", v, err)
		}
	})
}

func TestStore_RejectsInvalidVersion(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		if err := s.Save(context.Background(), "mf", 0, sampleState(), ModelMetadata{}); err == nil {
			t.Error("Save(v0) should fail")
		}
	})
}

func TestStore_CancelledContext(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := s.Save(ctx, "mf", 1, sampleState(), ModelMetadata{}); !errors.Is(err, context.Canceled) {
			t.Errorf("Save() error = %v, want context.Canceled", err)
		}
		if _, err := s.ListModels(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("ListModels() error = %v, want context.Canceled", err)
		}
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	backends(t, func(t *testing.T, s ModelStore) {
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 1; i <= 10; i++ {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				_ = s.Save(ctx, "mf", v, sampleState(), ModelMetadata{})
			}(i)
		}
		wg.Wait()

		v, err := s.LatestVersion(ctx, "mf")
		if err != nil || v != 10 {
			t.Errorf("LatestVersion() = %d, %v; want 10", v, err)
		}
	})
}

// tamperedEnvelope returns a valid envelope whose recorded checksum is wrong.
func tamperedEnvelope(t *testing.T) []byte {
	t.Helper()

	payload, _, err := encodeModel("mf", 1, sampleState(), ModelMetadata{})
	if err != nil {
		t.Fatal(err)
	}
	var sf storedFile
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&sf); err != nil {
		t.Fatal(err)
	}
	sf.Metadata.Checksum = "0000"

	var out bytes.Buffer
	if err := gob.NewEncoder(&out).Encode(sf); err != nil {
		t.Fatal(err)
	}
	return out.Bytes()
}

func TestFileStore_ChecksumValidation(t *testing.T) {
	t.Parallel()

	s := newFileStore(t)
	if err := os.WriteFile(filepath.Join(s.Dir(), "mf_v1.gob.gz"), tamperedEnvelope(t), 0o600); err != nil {
		t.Fatal(err)
	}

	var st MFModelState
	if _, err := s.Load(context.Background(), "mf", 1, &st); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Load() error = %v, want ErrChecksumMismatch", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	s := newFileStore(t)
	if err := os.WriteFile(filepath.Join(s.Dir(), "mf_v1.gob.gz"), []byte("not a model"), 0o600); err != nil {
		t.Fatal(err)
	}

	var st MFModelState
	if _, err := s.Load(context.Background(), "mf", 1, &st); err == nil {
		t.Error("Load() should fail on a corrupt file")
	}
}

func TestFileStore_ListModelsReportsUnreadable(t *testing.T) {
	t.Parallel()

	s := newFileStore(t)
	if err := s.Save(context.Background(), "good", 1, sampleState(), ModelMetadata{RatingCount: 3}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "mf_v2.gob.gz"), []byte("not a model"), 0o600); err != nil {
		t.Fatal(err)
	}

	models, err := s.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("len(ListModels()) = %d, want 2: %+v", len(models), models)
	}
	if models[0].Name != "good" || models[0].ReadError != "" {
		t.Errorf("models[0] = %+v", models[0])
	}
	if models[1].Name != "mf" || models[1].Version != 2 || models[1].ReadError == "" {
		t.Errorf("models[1] = %+v, want mf v2 with ReadError", models[1])
	}
}

func TestFileStore_IgnoresForeignFiles(t *testing.T) {
	t.Parallel()

	s := newFileStore(t)
	for _, name := range []string{"notes.txt", "mf_vX.gob.gz", "_v2.gob.gz", ".tmp-mf-123"} {
		if err := os.WriteFile(filepath.Join(s.Dir(), name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Save(context.Background(), "mf", 2, sampleState(), ModelMetadata{}); err != nil {
		t.Fatal(err)
	}

	v, err := s.LatestVersion(context.Background(), "mf")
	if err != nil || v != 2 {
		t.Errorf("LatestVersion() = %d, %v; want 2", v, err)
	}
}

func TestFileStore_SeesExternalWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	reader, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	writer, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := writer.Save(ctx, "mf", 1, sampleState(), ModelMetadata{}); err != nil {
		t.Fatal(err)
	}
	if v, err := reader.LatestVersion(ctx, "mf"); err != nil || v != 1 {
		t.Errorf("LatestVersion() = %d, %v; want 1", v, err)
	}
}

func TestBadgerStore_ChecksumValidation(t *testing.T) {
	t.Parallel()

	s := newInMemoryBadgerStore(t)
	ctx := context.Background()
	if err := s.Save(ctx, "mf", 1, sampleState(), ModelMetadata{}); err != nil {
		t.Fatal(err)
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(versionKey(modelKeyPrefix, "mf", 1), tamperedEnvelope(t))
	})
	if err != nil {
		t.Fatal(err)
	}

	var st MFModelState
	if _, err := s.Load(ctx, "mf", 1, &st); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("Load() error = %v, want ErrChecksumMismatch", err)
	}
}

func TestParseModelFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		wantName    string
		wantVersion int
	}{
		{in: "movie_recommender_v3", wantName: "movie_recommender", wantVersion: 3},
		{in: "mf_v12", wantName: "mf", wantVersion: 12},
		{in: "a_v_v2", wantName: "a_v", wantVersion: 2},
		{in: "mf", wantName: "", wantVersion: 0},
		{in: "mf_vx", wantName: "", wantVersion: 0},
		{in: "_v1", wantName: "", wantVersion: 0},
		{in: "mf_v0", wantName: "", wantVersion: 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			name, version := parseModelFilename(tt.in)
			if name != tt.wantName || version != tt.wantVersion {
				t.Errorf("parseModelFilename(%q) = %q, %d", tt.in, name, version)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	fs, err := Open(BackendFile, t.TempDir())
	if err != nil {
		t.Fatalf("Open(file) error = %v", err)
	}
	if _, ok := fs.(*FileStore); !ok {
		t.Errorf("Open(file) = %T", fs)
	}

	bs, err := Open(BackendBadger, t.TempDir())
	if err != nil {
		t.Fatalf("Open(badger) error = %v", err)
	}
	if _, ok := bs.(*BadgerStore); !ok {
		t.Errorf("Open(badger) = %T", bs)
	}
	if err := bs.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if _, err := Open("s3", t.TempDir()); err == nil {
		t.Error("Open(s3) should fail")
	}
}
