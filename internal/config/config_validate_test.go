// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"timeout zero", func(c *Config) { c.Server.Timeout = 0 }, "SERVER_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "prod" }, "ENVIRONMENT"},
		{"missing movies file", func(c *Config) { c.Data.MoviesFile = "" }, "MOVIES_FILE"},
		{"missing train file", func(c *Config) { c.Data.TrainFile = "" }, "TRAIN_FILE"},
		{"missing test file", func(c *Config) { c.Data.TestFile = "" }, "TEST_FILE"},
		{"missing model name", func(c *Config) { c.Model.Name = "" }, "MODEL_NAME"},
		{"unknown backend", func(c *Config) { c.Model.Backend = "s3" }, "MODEL_BACKEND"},
		{"badger backend", func(c *Config) { c.Model.Backend = "badger" }, ""},
		{"missing model path", func(c *Config) { c.Model.Path = "" }, "MODEL_PATH"},
		{"reload disabled", func(c *Config) { c.Model.ReloadInterval = 0 }, ""},
		{"negative reload", func(c *Config) { c.Model.ReloadInterval = -time.Second }, "MODEL_RELOAD_INTERVAL"},
		{"negative keep", func(c *Config) { c.Model.KeepVersions = -1 }, "MODEL_KEEP_VERSIONS"},
		{"breaker failures", func(c *Config) { c.Model.BreakerFailures = 0 }, "MODEL_BREAKER_FAILURES"},
		{"breaker timeout", func(c *Config) { c.Model.BreakerTimeout = 0 }, "MODEL_BREAKER_TIMEOUT"},
		{"zero factors", func(c *Config) { c.Training.Factors = 0 }, "TRAINING_FACTORS"},
		{"zero iterations", func(c *Config) { c.Training.Iterations = 0 }, "TRAINING_ITERATIONS"},
		{"learning rate", func(c *Config) { c.Training.LearningRate = 1.5 }, "TRAINING_LEARNING_RATE"},
		{"negative regularization", func(c *Config) { c.Training.Regularization = -0.1 }, "TRAINING_REGULARIZATION"},
		{"console top k zero", func(c *Config) { c.Console.TopK = 0 }, ""},
		{"console top k negative", func(c *Config) { c.Console.TopK = -1 }, "CONSOLE_TOP_K"},
		{"default k zero", func(c *Config) { c.API.DefaultK = 0 }, "API_DEFAULT_K"},
		{"max below default", func(c *Config) { c.API.MaxK = 2 }, "API_MAX_K"},
		{"default count", func(c *Config) { c.API.DefaultCount = 0 }, "API_DEFAULT_COUNT"},
		{"lucky count", func(c *Config) { c.API.LuckyCount = 0 }, "API_LUCKY_COUNT"},
		{"no origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit requests", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard in development should not warn")
	}
	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard in production should warn")
	}
	cfg.Security.CORSOrigins = []string{"https://movies.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q", got)
	}

	schema := cfg.Catalog.Schema()
	if !schema.IDColumn || schema.SequentialIDs || schema.Comma != ',' {
		t.Errorf("Catalog.Schema() = %+v", schema)
	}

	mf := cfg.Training.MFConfig()
	if mf.Factors != 100 || mf.Iterations != 20 || mf.Seed != 42 {
		t.Errorf("Training.MFConfig() = %+v", mf)
	}

	eng := cfg.API.EngineConfig()
	if eng.DefaultK != 5 || eng.MaxK != 100 {
		t.Errorf("API.EngineConfig() = %+v", eng)
	}
	if err := eng.Validate(); err != nil {
		t.Errorf("engine config from defaults invalid: %v", err)
	}

	lc := cfg.Logging.LoggerConfig()
	if lc.Level != "info" || lc.Format != "json" || !lc.Timestamp {
		t.Errorf("Logging.LoggerConfig() = %+v", lc)
	}
}

func TestDataPaths(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "movies.csv")
	d := DataConfig{Dir: "Data", MoviesFile: abs, TrainFile: "train.csv", TestFile: "test.csv"}

	if d.MoviesPath() != abs {
		t.Errorf("absolute MoviesPath() = %q, want %q", d.MoviesPath(), abs)
	}
	if d.TrainPath() != filepath.Join("Data", "train.csv") {
		t.Errorf("TrainPath() = %q", d.TrainPath())
	}
	d.Dir = ""
	if d.TestPath() != "test.csv" {
		t.Errorf("TestPath() without dir = %q", d.TestPath())
	}
}
