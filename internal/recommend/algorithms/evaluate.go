// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package algorithms

import (
	"errors"
	"math"

	"github.com/tomtom215/movierecommender/internal/ratings"
	"github.com/tomtom215/movierecommender/internal/recommend"
)

// ErrNoTestData is returned by Evaluate for an empty test set.
var ErrNoTestData = errors.New("no test ratings")

// RegressionMetrics summarizes prediction error on a labelled test set.
type RegressionMetrics struct {
	RMSE     float64 `json:"rmse"`
	MAE      float64 `json:"mae"`
	RSquared float64 `json:"r_squared"`
	Count    int     `json:"count"`
}

// Evaluate scores every test rating with scorer and compares the result to
// the label. R² is 1 - SS_res/SS_tot; when every label is equal SS_tot is
// zero and R² is 1 for a perfect fit, 0 otherwise.
func Evaluate(scorer recommend.Scorer, test []ratings.Rating) (RegressionMetrics, error) {
	if len(test) == 0 {
		return RegressionMetrics{}, ErrNoTestData
	}

	var labelSum float64
	for _, r := range test {
		labelSum += r.Label
	}
	labelMean := labelSum / float64(len(test))

	var ssRes, ssTot, absErr float64
	for _, r := range test {
		e := r.Label - scorer.Score(r.UserID, r.MovieID)
		ssRes += e * e
		absErr += math.Abs(e)

		d := r.Label - labelMean
		ssTot += d * d
	}

	n := float64(len(test))
	m := RegressionMetrics{
		RMSE:  math.Sqrt(ssRes / n),
		MAE:   absErr / n,
		Count: len(test),
	}
	switch {
	case ssTot > 0:
		m.RSquared = 1 - ssRes/ssTot
	case ssRes == 0:
		m.RSquared = 1
	}
	return m, nil
}
