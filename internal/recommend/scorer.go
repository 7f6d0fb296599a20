// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package recommend

import "math"

// Scorer predicts how relevant a movie is to a user.
// Scores are unbounded; higher means more relevant. Implementations decide
// how to score unknown users or movies and must be safe for concurrent use.
type Scorer interface {
	Score(userID, movieID int) float64
}

// ScorerFunc adapts an ordinary function to the Scorer interface.
type ScorerFunc func(userID, movieID int) float64

// Score calls f(userID, movieID).
func (f ScorerFunc) Score(userID, movieID int) float64 {
	return f(userID, movieID)
}

// Candidate is one scored catalog movie produced during a ranking call.
type Candidate struct {
	MovieID int     `json:"movie_id"`
	Score   float64 `json:"score"`
}

// IsRecommended reports whether score, rounded to one decimal place,
// exceeds threshold.
func IsRecommended(score, threshold float64) bool {
	return math.Round(score*10)/10 > threshold
}
