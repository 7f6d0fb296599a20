// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// Catalog is an ordered, read-only movie collection with an ID index.
type Catalog struct {
	movies []Movie
	byID   map[int]int
}

// New builds a catalog from movies in the given order.
// The slice is copied; ids must be unique.
func New(movies []Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]Movie, len(movies)),
		byID:   make(map[int]int, len(movies)),
	}
	copy(c.movies, movies)

	for i, m := range c.movies {
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}
		c.byID[m.ID] = i
	}
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movies returns a copy of the movies in catalog order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Each calls fn for every movie in catalog order without copying.
func (c *Catalog) Each(fn func(Movie)) {
	for _, m := range c.movies {
		fn(m)
	}
}

// ByID returns the movie with the given id.
func (c *Catalog) ByID(id int) (Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// FilterByGenre returns up to count movies whose genre string contains genre,
// ignoring case. A count <= 0 means no limit.
func (c *Catalog) FilterByGenre(genre string, count int) []Movie {
	needle := strings.ToLower(genre)
	return c.filter(count, func(m Movie) bool {
		return strings.Contains(strings.ToLower(m.Genres), needle)
	})
}

// SearchTitle returns up to count movies whose title contains query,
// ignoring case. A count <= 0 means no limit.
func (c *Catalog) SearchTitle(query string, count int) []Movie {
	needle := strings.ToLower(query)
	return c.filter(count, func(m Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), needle)
	})
}

func (c *Catalog) filter(count int, match func(Movie) bool) []Movie {
	out := []Movie{}
	for _, m := range c.movies {
		if count > 0 && len(out) >= count {
			break
		}
		if match(m) {
			out = append(out, m)
		}
	}
	return out
}

// Genres returns the distinct genre tags in first-seen order.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range c.movies {
		for _, g := range m.GenreList() {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}

// Sample returns min(n, Len()) distinct movies in random order.
// A nil rng uses the shared math/rand source.
func (c *Catalog) Sample(n int, rng *rand.Rand) []Movie {
	if n <= 0 || len(c.movies) == 0 {
		return []Movie{}
	}
	if n > len(c.movies) {
		n = len(c.movies)
	}

	var perm []int
	if rng != nil {
		perm = rng.Perm(len(c.movies))
	} else {
		perm = rand.Perm(len(c.movies)) //nolint:gosec // not security sensitive
	}

	out := make([]Movie, n)
	for i := 0; i < n; i++ {
		out[i] = c.movies[perm[i]]
	}
	return out
}
