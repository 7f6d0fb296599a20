// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package main is the entry point for the MovieRecommender API server.

The server answers recommendation and catalog queries over HTTP. It never
trains: models are produced by cmd/recommender and written to the model
store, from where the server loads the newest version and keeps polling
for newer ones.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("movierecommender")
	├── ModelSupervisor ("model-layer")
	│   └── Model service (catalog load, model hot-swap, circuit breaker)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml, .env and environment
 2. Logging: zerolog with JSON/console output modes
 3. Model store: file directory or BadgerDB
 4. Recommendation engine: empty until the model service fills it
 5. Supervisor tree with the model and HTTP services

# Configuration

	Priority: Environment variables > .env > Config file > Defaults

Core environment variables:

	HTTP_PORT=8080               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	DATA_DIR=Data                # movies and ratings CSVs
	MODEL_BACKEND=file           # file or badger
	MODEL_PATH=Data/models       # model store location
	MODEL_RELOAD_INTERVAL=1m     # 0 disables polling
	CORS_ORIGINS=*               # comma-separated allowed origins
	RATE_LIMIT_REQUESTS=100      # per IP per window

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10s, then the model store is closed.

# Example Usage

	./recommender                # train and save model v1
	./server                     # serve it
	curl localhost:8080/api/v1/movie/recommendations/6?topK=5
*/
package main
