// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package catalog

import "strings"

// GenreSeparator joins genre tags inside Movie.Genres.
const GenreSeparator = "|"

// Movie is a single catalog entry.
type Movie struct {
	// ID is unique within one catalog load.
	ID int `json:"id"`

	// Title is free text and may contain commas.
	Title string `json:"title"`

	// Genres is the raw pipe-delimited tag string, e.g. "Adventure|Children".
	Genres string `json:"genres"`
}

// GenreList splits Genres on the separator, dropping empty tags.
func (m Movie) GenreList() []string {
	if m.Genres == "" {
		return nil
	}
	parts := strings.Split(m.Genres, GenreSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
