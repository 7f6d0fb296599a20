// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package config

import (
	"fmt"
	"time"
)

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// maxTopK bounds api.max_k and console.top_k.
const maxTopK = 10000

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateData,
		c.validateModel,
		c.validateTraining,
		c.validateConsole,
		c.validateAPI,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateData() error {
	if c.Data.MoviesFile == "" {
		return fmt.Errorf("MOVIES_FILE is required")
	}
	if c.Data.TrainFile == "" {
		return fmt.Errorf("TRAIN_FILE is required")
	}
	if c.Data.TestFile == "" {
		return fmt.Errorf("TEST_FILE is required")
	}
	return nil
}

// validBackends defines the allowed model store backends
var validBackends = map[string]bool{
	"file":   true,
	"badger": true,
}

func (c *Config) validateModel() error {
	m := c.Model
	if m.Name == "" {
		return fmt.Errorf("MODEL_NAME is required")
	}
	if !validBackends[m.Backend] {
		return fmt.Errorf("MODEL_BACKEND must be one of: file, badger")
	}
	if m.Path == "" {
		return fmt.Errorf("MODEL_PATH is required")
	}
	if m.ReloadInterval < 0 {
		return fmt.Errorf("MODEL_RELOAD_INTERVAL must not be negative")
	}
	if m.KeepVersions < 0 {
		return fmt.Errorf("MODEL_KEEP_VERSIONS must not be negative")
	}
	if m.BreakerFailures < 1 {
		return fmt.Errorf("MODEL_BREAKER_FAILURES must be at least 1")
	}
	if m.BreakerTimeout <= 0 {
		return fmt.Errorf("MODEL_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateTraining() error {
	t := c.Training
	if t.Factors < 1 {
		return fmt.Errorf("TRAINING_FACTORS must be at least 1")
	}
	if t.Iterations < 1 {
		return fmt.Errorf("TRAINING_ITERATIONS must be at least 1")
	}
	if t.LearningRate <= 0 || t.LearningRate >= 1 {
		return fmt.Errorf("TRAINING_LEARNING_RATE must be in (0, 1)")
	}
	if t.Regularization < 0 {
		return fmt.Errorf("TRAINING_REGULARIZATION must not be negative")
	}
	return nil
}

func (c *Config) validateConsole() error {
	if c.Console.TopK < 0 || c.Console.TopK > maxTopK {
		return fmt.Errorf("CONSOLE_TOP_K must be between 0 and %d", maxTopK)
	}
	return nil
}

func (c *Config) validateAPI() error {
	a := c.API
	if a.DefaultK < 1 {
		return fmt.Errorf("API_DEFAULT_K must be at least 1")
	}
	if a.MaxK < a.DefaultK || a.MaxK > maxTopK {
		return fmt.Errorf("API_MAX_K must be between API_DEFAULT_K and %d", maxTopK)
	}
	if a.DefaultCount < 1 {
		return fmt.Errorf("API_DEFAULT_COUNT must be at least 1")
	}
	if a.LuckyCount < 1 {
		return fmt.Errorf("API_LUCKY_COUNT must be at least 1")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if wildcard CORS is used in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
