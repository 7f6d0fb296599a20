// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package algorithms

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/movierecommender/internal/ratings"
	"github.com/tomtom215/movierecommender/internal/recommend"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	predictions := map[int]float64{1: 1, 2: 2, 3: 4}
	scorer := recommend.ScorerFunc(func(_, movieID int) float64 { return predictions[movieID] })

	test := []ratings.Rating{
		{UserID: 1, MovieID: 1, Label: 1},
		{UserID: 1, MovieID: 2, Label: 2},
		{UserID: 1, MovieID: 3, Label: 3},
	}

	got, err := Evaluate(scorer, test)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	const eps = 1e-12
	if want := math.Sqrt(1.0 / 3.0); math.Abs(got.RMSE-want) > eps {
		t.Errorf("RMSE = %v, want %v", got.RMSE, want)
	}
	if want := 1.0 / 3.0; math.Abs(got.MAE-want) > eps {
		t.Errorf("MAE = %v, want %v", got.MAE, want)
	}
	if want := 0.5; math.Abs(got.RSquared-want) > eps {
		t.Errorf("RSquared = %v, want %v", got.RSquared, want)
	}
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
}

func TestEvaluate_ConstantLabels(t *testing.T) {
	t.Parallel()

	test := []ratings.Rating{{MovieID: 1, Label: 4}, {MovieID: 2, Label: 4}}

	perfect, err := Evaluate(recommend.ScorerFunc(func(int, int) float64 { return 4 }), test)
	if err != nil {
		t.Fatal(err)
	}
	if perfect.RSquared != 1 || perfect.RMSE != 0 {
		t.Errorf("perfect fit = %+v", perfect)
	}

	off, err := Evaluate(recommend.ScorerFunc(func(int, int) float64 { return 3 }), test)
	if err != nil {
		t.Fatal(err)
	}
	if off.RSquared != 0 || off.RMSE != 1 {
		t.Errorf("constant offset = %+v", off)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	t.Parallel()

	if _, err := Evaluate(recommend.ScorerFunc(func(int, int) float64 { return 0 }), nil); !errors.Is(err, ErrNoTestData) {
		t.Errorf("Evaluate(nil) error = %v, want ErrNoTestData", err)
	}
}

func TestEvaluate_TrainedModel(t *testing.T) {
	t.Parallel()

	m := NewMatrixFactorization(smallConfig())
	train := twoTasteRatings()
	if err := m.Train(t.Context(), train); err != nil {
		t.Fatal(err)
	}

	got, err := Evaluate(m, train)
	if err != nil {
		t.Fatal(err)
	}
	if got.RSquared <= 0.5 {
		t.Errorf("RSquared on training data = %v, want > 0.5", got.RSquared)
	}
	if math.Abs(got.RMSE-m.Stats().TrainRMSE) > 1e-9 {
		t.Errorf("RMSE = %v, TrainRMSE = %v", got.RMSE, m.Stats().TrainRMSE)
	}
}
