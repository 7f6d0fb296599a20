// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/movierecommender/config.yaml",
	"/etc/movierecommender/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the location of the optional dotenv file.
const DotEnvPathEnvVar = "DOTENV_PATH"

const defaultDotEnvPath = ".env"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Data: DataConfig{
			Dir:        "Data",
			MoviesFile: "recommendation-movies.csv",
			TrainFile:  "recommendation-ratings-train.csv",
			TestFile:   "recommendation-ratings-test.csv",
		},
		Catalog: CatalogConfig{
			IDColumn:      true,
			SequentialIDs: false,
		},
		Model: ModelConfig{
			Name:            "movie_recommender",
			Backend:         "file",
			Path:            "Data/models",
			ReloadInterval:  time.Minute,
			KeepVersions:    3,
			BreakerFailures: 3,
			BreakerTimeout:  30 * time.Second,
		},
		Training: TrainingConfig{
			Factors:        100,
			Iterations:     20,
			LearningRate:   0.01,
			Regularization: 0.05,
			Seed:           42,
		},
		Console: ConsoleConfig{
			UserID:    6,
			MovieID:   10,
			TopK:      5,
			Threshold: 3.5,
		},
		API: APIConfig{
			DefaultK:     5,
			MaxK:         100,
			DefaultCount: 5,
			LuckyCount:   10,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration without reading any source.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Dotenv: Optional .env file copied into the process environment
//  4. Environment Variables: Override any setting
//
// Precedence is ENV > .env > File > Defaults. Variables already present in
// the environment are never replaced by the .env file.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Dotenv (optional)
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	// Layer 4: Load environment variables (highest priority)
	// HTTP_PORT -> server.port
	// TRAINING_FACTORS -> training.factors
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadDotEnv copies the dotenv file into the process environment. A missing
// file is not an error.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	if path == "" {
		path = defaultDotEnvPath
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load dotenv file %s: %w", path, err)
	}
	return nil
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unlisted variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":      "server.host",
	"http_port":      "server.port",
	"server_timeout": "server.timeout",
	"environment":    "server.environment",

	// Data files
	"data_dir":    "data.dir",
	"movies_file": "data.movies_file",
	"train_file":  "data.train_file",
	"test_file":   "data.test_file",

	// Catalog layout
	"catalog_id_column":      "catalog.id_column",
	"catalog_sequential_ids": "catalog.sequential_ids",

	// Model store
	"model_name":             "model.name",
	"model_backend":          "model.backend",
	"model_path":             "model.path",
	"model_reload_interval":  "model.reload_interval",
	"model_keep_versions":    "model.keep_versions",
	"model_breaker_failures": "model.breaker_failures",
	"model_breaker_timeout":  "model.breaker_timeout",

	// Training
	"training_factors":        "training.factors",
	"training_iterations":     "training.iterations",
	"training_learning_rate":  "training.learning_rate",
	"training_regularization": "training.regularization",
	"training_seed":           "training.seed",

	// Console run
	"console_user_id":   "console.user_id",
	"console_movie_id":  "console.movie_id",
	"console_top_k":     "console.top_k",
	"console_threshold": "console.threshold",

	// API
	"api_default_k":     "api.default_k",
	"api_max_k":         "api.max_k",
	"api_default_count": "api.default_count",
	"api_lucky_count":   "api.lucky_count",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - MODEL_BACKEND -> model.backend
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	// Returning "" makes koanf skip the variable.
	return ""
}
