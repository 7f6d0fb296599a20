// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package catalog loads and queries the set of recommendable movies.
//
// A Catalog is built once from a delimited text source and is read-only
// afterwards, so a single instance can be shared by concurrent readers
// without locking.
//
// # Column Contract
//
// The loader does not bind columns by name or reflection. It follows an
// explicit column-order Schema:
//
//	id,title,genres      Schema{IDColumn: true}
//	title,genres         Schema{IDColumn: false}
//
// When the schema carries no usable identifier (IDColumn false, or
// SequentialIDs true) movies are numbered 1..n in row order. Genres are a
// single field joined with "|", for example "Action|Comedy".
//
// # Queries
//
// Besides lookup by ID, the catalog supports a handful of linear scans:
// case-insensitive genre and title substring filters, the distinct genre
// list, and a uniform random sample.
package catalog
