// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package ratings

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	src := "userId,movieId,Label\n1,1,4\n1,3,4.5\n6.0,10.0,3\n"
	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Rating{
		{UserID: 1, MovieID: 1, Label: 4},
		{UserID: 1, MovieID: 3, Label: 4.5},
		{UserID: 6, MovieID: 10, Label: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrMissingHeader},
		{name: "short row", input: "userId,movieId,Label\n1,2\n", wantErr: ErrColumnCount},
		{name: "bad user", input: "userId,movieId,Label\nx,2,3\n", wantErr: ErrInvalidValue},
		{name: "bad movie", input: "userId,movieId,Label\n1,2.5,3\n", wantErr: ErrInvalidValue},
		{name: "bad label", input: "userId,movieId,Label\n1,2,great\n", wantErr: ErrInvalidValue},
		{name: "NaN label", input: "userId,movieId,Label\n1,1,NaN\n", wantErr: ErrInvalidValue},
		{name: "infinite label", input: "userId,movieId,Label\n1,1,4\n1,2,+Inf\n", wantErr: ErrInvalidValue},
		{name: "negative infinite label", input: "userId,movieId,Label\n1,2,-inf\n", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(strings.NewReader(tt.input)); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ErrorLine(t *testing.T) {
	t.Parallel()

	// Blank lines are skipped by the reader but still count.
	src := "userId,movieId,Label\n1,1,4\n\n\n1,2,NaN\n"
	_, err := Load(strings.NewReader(src))
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Load() error = %v, want ErrInvalidValue", err)
	}
	if !strings.HasPrefix(err.Error(), "line 5:") {
		t.Errorf("Load() error = %q, want line 5", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "train.csv")
	if err := os.WriteFile(path, []byte("userId,movieId,Label\n2,5,1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	rs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(rs) != 1 || rs[0].MovieID != 5 {
		t.Errorf("LoadFile() = %+v", rs)
	}

	if _, err := LoadFile(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]Rating{
		{UserID: 1, MovieID: 1, Label: 2},
		{UserID: 1, MovieID: 2, Label: 4},
		{UserID: 2, MovieID: 1, Label: 3},
	})
	if s.Count != 3 || s.Users != 2 || s.Movies != 2 || s.Mean != 3 {
		t.Errorf("Summarize() = %+v", s)
	}

	if empty := Summarize(nil); empty != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
}
