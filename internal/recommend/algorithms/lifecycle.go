// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package algorithms

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/movierecommender/internal/recommend"
)

var _ recommend.Scorer = (*MatrixFactorization)(nil)

// lifecycle records whether a model holds fitted parameters and guards
// them: fitting takes mu for writing, scoring takes it for reading.
// Embedders get Name, IsTrained, Version and LastTrainedAt.
type lifecycle struct {
	mu       sync.RWMutex
	name     string
	fits     int
	fittedAt time.Time
}

func newLifecycle(name string) lifecycle {
	return lifecycle{name: name}
}

// Name identifies the model kind in logs and stored metadata.
func (l *lifecycle) Name() string { return l.name }

// IsTrained reports whether parameters are present, either from Train or
// from a restored state.
func (l *lifecycle) IsTrained() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fits > 0
}

// Version counts the fits applied to this instance. It is unrelated to
// the model store version.
func (l *lifecycle) Version() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fits
}

// LastTrainedAt is the time of the latest fit.
func (l *lifecycle) LastTrainedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fittedAt
}

// fitted must be called with mu held for writing.
func (l *lifecycle) fitted(at time.Time) {
	l.fits++
	l.fittedAt = at
}

// ContextCancelled polls ctx without blocking. Training loops check it
// between epochs.
func ContextCancelled(ctx context.Context) bool {
	return ctx.Err() != nil
}
