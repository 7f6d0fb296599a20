// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package recommend

import "fmt"

// Config holds the engine's operational limits.
type Config struct {
	// DefaultK is the number of recommendations returned when a caller
	// does not ask for a specific amount.
	// Default: 5.
	DefaultK int `json:"default_k"`

	// MaxK is the largest k Recommend accepts.
	// Default: 100.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultK: 5,
		MaxK:     100,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	return nil
}
