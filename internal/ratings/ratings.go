// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

// Package ratings loads explicit user/movie rating data used to train and
// evaluate the recommendation model.
//
// The file format is a CSV with a header row and the columns
// userId,movieId,Label. Identifiers may be written as integral floats
// ("6.0"), which some exporters produce.
package ratings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Loader errors.
var (
	ErrMissingHeader = errors.New("ratings: missing header row")
	ErrColumnCount   = errors.New("ratings: expected userId,movieId,Label")
	ErrInvalidValue  = errors.New("ratings: invalid value")
)

// Rating is one observed (user, movie, label) triple.
type Rating struct {
	UserID  int     `json:"user_id"`
	MovieID int     `json:"movie_id"`
	Label   float64 `json:"label"`
}

// Stats summarizes a rating set.
type Stats struct {
	Count  int
	Users  int
	Movies int
	Mean   float64
}

// Summarize computes Stats over rs.
func Summarize(rs []Rating) Stats {
	s := Stats{Count: len(rs)}
	if len(rs) == 0 {
		return s
	}

	users := make(map[int]struct{})
	movies := make(map[int]struct{})
	var sum float64
	for _, r := range rs {
		users[r.UserID] = struct{}{}
		movies[r.MovieID] = struct{}{}
		sum += r.Label
	}
	s.Users = len(users)
	s.Movies = len(movies)
	s.Mean = sum / float64(len(rs))
	return s
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]Rating, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("open ratings %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	rs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load ratings %s: %w", path, err)
	}
	return rs, nil
}

// Load parses a header row followed by userId,movieId,Label rows. Labels
// must be finite. Errors name the physical line of the offending row.
func Load(r io.Reader) ([]Rating, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out []Rating
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: %w", line, ErrColumnCount)
		}

		rating, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rating)
	}

	return out, nil
}

func parseRecord(record []string) (Rating, error) {
	user, err := parseID(record[0])
	if err != nil {
		return Rating{}, err
	}
	movie, err := parseID(record[1])
	if err != nil {
		return Rating{}, err
	}
	label, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil || math.IsNaN(label) || math.IsInf(label, 0) {
		return Rating{}, fmt.Errorf("%w: label %q", ErrInvalidValue, record[2])
	}
	return Rating{UserID: user, MovieID: movie, Label: label}, nil
}

func parseID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidValue, raw)
	}
	return int(f), nil
}
