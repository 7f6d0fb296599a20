// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package validation validates API request parameters with
// go-playground/validator v10.
//
// A single validator instance is shared process-wide because the library
// caches struct metadata per instance. Failures are translated into short
// messages keyed by the request parameter name and converted to the
// VALIDATION_ERROR API error with ToAPIError.
//
// Besides the built-in tags the validator registers:
//   - genre: non-blank and free of the "|" genre separator
package validation
