// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package services provides the suture.Service implementations run by the
supervisor tree.

ModelService loads the movie catalog and the newest stored model into the
recommendation engine, then polls the model store and hot-swaps newer
versions. Store reads pass through a sony/gobreaker circuit breaker.

HTTPServerService adapts *http.Server's ListenAndServe and Shutdown pair to
suture's context-driven Serve.

Both implement fmt.Stringer so suture can name them in its events.
*/
package services
