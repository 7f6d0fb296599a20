// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/movierecommender/internal/catalog"
)

// ErrInvalidArgument reports a negative k or a missing scorer or catalog.
var ErrInvalidArgument = errors.New("invalid argument")

// TopK returns the k highest scoring catalog movies for userID.
//
// The scorer is called exactly once per movie. The result has
// min(k, cat.Len()) entries in descending score order, ties in catalog
// order. An empty catalog yields an empty slice.
func TopK(scorer Scorer, cat *catalog.Catalog, userID, k int) ([]catalog.Movie, error) {
	if scorer == nil {
		return nil, fmt.Errorf("%w: nil scorer", ErrInvalidArgument)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidArgument)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: k must be non-negative, got %d", ErrInvalidArgument, k)
	}

	candidates := ScoreCatalog(scorer, cat, userID)
	return SelectTop(candidates, k, cat.ByID), nil
}

// ScoreCatalog scores every catalog movie for userID in catalog order.
func ScoreCatalog(scorer Scorer, cat *catalog.Catalog, userID int) []Candidate {
	candidates := make([]Candidate, 0, cat.Len())
	cat.Each(func(m catalog.Movie) {
		candidates = append(candidates, Candidate{
			MovieID: m.ID,
			Score:   scorer.Score(userID, m.ID),
		})
	})
	return candidates
}

// SelectTop sorts candidates by descending score (stable), keeps the first k
// and resolves each through lookup. Candidates that lookup cannot resolve are
// dropped. candidates is reordered in place.
func SelectTop(candidates []Candidate, k int, lookup func(int) (catalog.Movie, bool)) []catalog.Movie {
	sort.SliceStable(candidates, func(i, j int) bool {
		return higher(candidates[i].Score, candidates[j].Score)
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	if k < 0 {
		k = 0
	}

	out := make([]catalog.Movie, 0, k)
	for _, c := range candidates[:k] {
		m, ok := lookup(c.MovieID)
		if !ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

// higher orders a before b. NaN ranks below every number.
func higher(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	default:
		return a > b
	}
}
