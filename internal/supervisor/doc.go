// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package supervisor runs the server's long-lived services under a suture v4
supervision tree.

	movierecommender
	├── model-layer
	│   └── ModelService (catalog load, model load, hot reload)
	└── api-layer
	    └── HTTPServerService

Each layer restarts its own children with suture's backoff. The layers are
siblings, so a model loader that keeps failing never restarts the HTTP
server; the API simply keeps reporting 503 on /health/ready.

Supervisor events (start, stop, panic, backoff) are logged through
sutureslog, which takes a *slog.Logger. Pass logging.NewSlogLogger() so the
events land in the same zerolog stream as everything else:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddModelService(modelSvc)
	tree.AddAPIService(httpSvc)
	return tree.Serve(ctx)
*/
package supervisor
