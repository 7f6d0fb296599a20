// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Loader errors.
var (
	// ErrMissingHeader is returned when the source has no header row.
	ErrMissingHeader = errors.New("catalog: missing header row")

	// ErrColumnCount is returned when a row has fewer columns than the schema needs.
	ErrColumnCount = errors.New("catalog: unexpected column count")

	// ErrInvalidID is returned when the id column is not an integer.
	ErrInvalidID = errors.New("catalog: invalid movie id")

	// ErrDuplicateID is returned when two rows share an id.
	ErrDuplicateID = errors.New("catalog: duplicate movie id")
)

// Schema is the column-order contract for a movies file.
type Schema struct {
	// IDColumn reports whether column 0 holds the numeric movie id.
	// When false the columns are title,genres.
	IDColumn bool

	// SequentialIDs ignores any id column and numbers movies 1..n in row
	// order. Use it when the ids a model was trained with are row positions.
	SequentialIDs bool

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// DefaultSchema is id,title,genres with explicit ids.
func DefaultSchema() Schema {
	return Schema{IDColumn: true, Comma: ','}
}

func (s Schema) columns() int {
	if s.IDColumn {
		return 3
	}
	return 2
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string, schema Schema) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	c, err := Load(f, schema)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Load parses a header row followed by one movie per data row.
// Row order is preserved in the resulting Catalog.
func Load(r io.Reader, schema Schema) (*Catalog, error) {
	cr := csv.NewReader(r)
	if schema.Comma != 0 {
		cr.Comma = schema.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	want := schema.columns()
	var movies []Movie
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if isBlank(record) {
			continue
		}
		// Quoted titles may span lines; report where the row starts.
		line, _ := cr.FieldPos(0)
		if len(record) < want {
			return nil, fmt.Errorf("line %d: %w: got %d, want %d", line, ErrColumnCount, len(record), want)
		}

		m, err := parseRecord(record, schema, len(movies)+1)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		movies = append(movies, m)
	}

	return New(movies)
}

// parseRecord maps one CSV record to a Movie. seq is the 1-based row position.
func parseRecord(record []string, schema Schema, seq int) (Movie, error) {
	offset := 0
	id := seq
	if schema.IDColumn {
		offset = 1
		if !schema.SequentialIDs {
			parsed, err := parseID(record[0])
			if err != nil {
				return Movie{}, err
			}
			id = parsed
		}
	}

	return Movie{
		ID:     id,
		Title:  strings.TrimSpace(record[offset]),
		Genres: strings.TrimSpace(record[offset+1]),
	}, nil
}

// parseID accepts plain integers and integral floats such as "10.0".
func parseID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return int(f), nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
