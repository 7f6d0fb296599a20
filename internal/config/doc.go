// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package config provides centralized configuration for the console trainer
and the recommendation server.

# Configuration Sources

LoadWithKoanf layers, lowest priority first:
  - Built-in defaults (defaultConfig)
  - YAML file: CONFIG_PATH, else config.yaml / config.yml in the working
    directory, else /etc/movierecommender/config.yaml
  - Dotenv file: DOTENV_PATH, else .env (never overrides real env vars)
  - Environment variables listed below

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Data:
  - DATA_DIR: Directory holding the CSV files (default: Data)
  - MOVIES_FILE: Movies CSV (default: recommendation-movies.csv)
  - TRAIN_FILE / TEST_FILE: Ratings CSVs
  - CATALOG_ID_COLUMN: First column is the movie id (default: true)
  - CATALOG_SEQUENTIAL_IDS: Number movies 1..n in row order (default: false)

Model:
  - MODEL_NAME: Store key (default: movie_recommender)
  - MODEL_BACKEND: file or badger (default: file)
  - MODEL_PATH: Store directory (default: Data/models)
  - MODEL_RELOAD_INTERVAL: Server poll interval, 0 disables (default: 1m)
  - MODEL_KEEP_VERSIONS: Versions kept after a save, 0 keeps all (default: 3)
  - MODEL_BREAKER_FAILURES / MODEL_BREAKER_TIMEOUT: Store circuit breaker

Training:
  - TRAINING_FACTORS, TRAINING_ITERATIONS, TRAINING_LEARNING_RATE,
    TRAINING_REGULARIZATION, TRAINING_SEED

Console:
  - CONSOLE_USER_ID (6), CONSOLE_MOVIE_ID (10), CONSOLE_TOP_K (5),
    CONSOLE_THRESHOLD (3.5)

API:
  - API_DEFAULT_K (5), API_MAX_K (100), API_DEFAULT_COUNT (5), API_LUCKY_COUNT (10)

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: Per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Turn the limiter off (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.LoggerConfig())
*/
package config
