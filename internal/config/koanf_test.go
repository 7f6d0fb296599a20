// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
)

// isolate points the file and dotenv lookups at paths that do not exist so
// a stray config.yaml or .env in the working directory cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(DotEnvPathEnvVar, filepath.Join(dir, "missing.env"))
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Data.MoviesPath() != filepath.Join("Data", "recommendation-movies.csv") {
		t.Errorf("Data.MoviesPath() = %q", cfg.Data.MoviesPath())
	}
	if !cfg.Catalog.IDColumn || cfg.Catalog.SequentialIDs {
		t.Errorf("Catalog = %+v, want id column without sequential ids", cfg.Catalog)
	}
	if cfg.Model.Backend != "file" || cfg.Model.Name != "movie_recommender" {
		t.Errorf("Model = %+v", cfg.Model)
	}
	if cfg.Model.ReloadInterval != time.Minute {
		t.Errorf("Model.ReloadInterval = %v, want 1m", cfg.Model.ReloadInterval)
	}
	if cfg.Training.Factors != 100 || cfg.Training.Iterations != 20 {
		t.Errorf("Training = %+v", cfg.Training)
	}
	if cfg.Console.UserID != 6 || cfg.Console.MovieID != 10 || cfg.Console.TopK != 5 || cfg.Console.Threshold != 3.5 {
		t.Errorf("Console = %+v", cfg.Console)
	}
	if cfg.API.DefaultK != 5 || cfg.API.MaxK != 100 || cfg.API.LuckyCount != 10 {
		t.Errorf("API = %+v", cfg.API)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("LoadWithKoanf() = %+v, want defaults", cfg)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MODEL_BACKEND", "badger")
	t.Setenv("MODEL_RELOAD_INTERVAL", "5m")
	t.Setenv("TRAINING_LEARNING_RATE", "0.02")
	t.Setenv("CATALOG_ID_COLUMN", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Model.Backend != "badger" {
		t.Errorf("Model.Backend = %q, want badger", cfg.Model.Backend)
	}
	if cfg.Model.ReloadInterval != 5*time.Minute {
		t.Errorf("Model.ReloadInterval = %v, want 5m", cfg.Model.ReloadInterval)
	}
	if cfg.Training.LearningRate != 0.02 {
		t.Errorf("Training.LearningRate = %v, want 0.02", cfg.Training.LearningRate)
	}
	if cfg.Catalog.IDColumn {
		t.Error("Catalog.IDColumn should be false")
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled should be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	yaml := `server:
  port: 9000
model:
  backend: badger
  path: /var/lib/models
training:
  factors: 16
security:
  cors_origins:
    - https://x.example
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("TRAINING_FACTORS", "32")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000 from file", cfg.Server.Port)
	}
	if cfg.Model.Path != "/var/lib/models" {
		t.Errorf("Model.Path = %q", cfg.Model.Path)
	}
	if cfg.Training.Factors != 32 {
		t.Errorf("Training.Factors = %d, want env value 32", cfg.Training.Factors)
	}
	if cfg.Training.Iterations != 20 {
		t.Errorf("Training.Iterations = %d, want default 20", cfg.Training.Iterations)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://x.example"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_DotEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("CONSOLE_USER_ID=12\nCONSOLE_TOP_K=9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(DotEnvPathEnvVar, path)
	t.Setenv("CONSOLE_TOP_K", "7")
	// godotenv writes straight to the process environment.
	t.Cleanup(func() { _ = os.Unsetenv("CONSOLE_USER_ID") })

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Console.UserID != 12 {
		t.Errorf("Console.UserID = %d, want 12 from dotenv", cfg.Console.UserID)
	}
	if cfg.Console.TopK != 7 {
		t.Errorf("Console.TopK = %d, want real env value 7", cfg.Console.TopK)
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"bad backend", "MODEL_BACKEND", "s3", "MODEL_BACKEND"},
		{"bad port", "HTTP_PORT", "70000", "HTTP_PORT"},
		{"bad log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"unparsable int", "API_MAX_K", "lots", "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoadWithKoanf_BrokenFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	if _, err := LoadWithKoanf(); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("LoadWithKoanf() error = %v, want file path in error", err)
	}
}

func TestProcessSliceFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value interface{}
		want  interface{}
	}{
		{"comma string", "a, b,,c ", []string{"a", "b", "c"}},
		{"empty string", "", ""},
		{"only commas", " , ", " , "},
		{"already slice", []string{"x"}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			k := koanf.New(".")
			if err := k.Set("security.cors_origins", tt.value); err != nil {
				t.Fatal(err)
			}
			if err := processSliceFields(k); err != nil {
				t.Fatalf("processSliceFields() error = %v", err)
			}
			if got := k.Get("security.cors_origins"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cors_origins = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":              "server.port",
		"model_backend":          "model.backend",
		"RATE_LIMIT_REQUESTS":    "security.rate_limit_reqs",
		"CATALOG_SEQUENTIAL_IDS": "catalog.sequential_ids",
		"PATH":                   "",
		"HOME":                   "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}
