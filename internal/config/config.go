// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tomtom215/movierecommender/internal/catalog"
	"github.com/tomtom215/movierecommender/internal/logging"
	"github.com/tomtom215/movierecommender/internal/recommend"
	"github.com/tomtom215/movierecommender/internal/recommend/algorithms"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Data     DataConfig     `koanf:"data"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Model    ModelConfig    `koanf:"model"`
	Training TrainingConfig `koanf:"training"`
	Console  ConsoleConfig  `koanf:"console"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DataConfig locates the CSV inputs. File names are resolved against Dir
// unless they are absolute.
type DataConfig struct {
	Dir        string `koanf:"dir"`
	MoviesFile string `koanf:"movies_file"`
	TrainFile  string `koanf:"train_file"`
	TestFile   string `koanf:"test_file"`
}

// MoviesPath returns the resolved movies CSV path.
func (d DataConfig) MoviesPath() string { return d.resolve(d.MoviesFile) }

// TrainPath returns the resolved training ratings CSV path.
func (d DataConfig) TrainPath() string { return d.resolve(d.TrainFile) }

// TestPath returns the resolved test ratings CSV path.
func (d DataConfig) TestPath() string { return d.resolve(d.TestFile) }

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// CatalogConfig describes the movies file layout.
type CatalogConfig struct {
	IDColumn      bool `koanf:"id_column"`
	SequentialIDs bool `koanf:"sequential_ids"`
}

// Schema converts the settings into a loader schema.
func (c CatalogConfig) Schema() catalog.Schema {
	s := catalog.DefaultSchema()
	s.IDColumn = c.IDColumn
	s.SequentialIDs = c.SequentialIDs
	return s
}

// ModelConfig controls where trained models live and how the server
// picks up new versions.
type ModelConfig struct {
	Name            string        `koanf:"name"`
	Backend         string        `koanf:"backend"` // file or badger
	Path            string        `koanf:"path"`
	ReloadInterval  time.Duration `koanf:"reload_interval"`
	KeepVersions    int           `koanf:"keep_versions"`
	BreakerFailures int           `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// TrainingConfig holds matrix factorization hyperparameters.
type TrainingConfig struct {
	Factors        int     `koanf:"factors"`
	Iterations     int     `koanf:"iterations"`
	LearningRate   float64 `koanf:"learning_rate"`
	Regularization float64 `koanf:"regularization"`
	Seed           int64   `koanf:"seed"`
}

// MFConfig converts the settings into the trainer's configuration.
func (t TrainingConfig) MFConfig() algorithms.MFConfig {
	return algorithms.MFConfig{
		Factors:        t.Factors,
		Iterations:     t.Iterations,
		LearningRate:   t.LearningRate,
		Regularization: t.Regularization,
		Seed:           t.Seed,
	}
}

// ConsoleConfig drives the train-evaluate-predict console run.
type ConsoleConfig struct {
	UserID    int     `koanf:"user_id"`
	MovieID   int     `koanf:"movie_id"`
	TopK      int     `koanf:"top_k"`
	Threshold float64 `koanf:"threshold"`
}

// APIConfig holds response size settings for the HTTP API
type APIConfig struct {
	DefaultK     int `koanf:"default_k"`
	MaxK         int `koanf:"max_k"`
	DefaultCount int `koanf:"default_count"`
	LuckyCount   int `koanf:"lucky_count"`
}

// EngineConfig converts the settings into the recommendation engine limits.
func (a APIConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{DefaultK: a.DefaultK, MaxK: a.MaxK}
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json, console
	Caller bool   `koanf:"caller"`
}

// LoggerConfig converts the settings for logging.Init.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String summarizes the settings worth logging at startup.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s data=%s model=%s/%s(%s)",
		c.Server.Addr(), c.Data.Dir, c.Model.Backend, c.Model.Name, c.Model.Path)
}
