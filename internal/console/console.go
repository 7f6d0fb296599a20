// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomtom215/movierecommender/internal/catalog"
	"github.com/tomtom215/movierecommender/internal/config"
	"github.com/tomtom215/movierecommender/internal/logging"
	"github.com/tomtom215/movierecommender/internal/metrics"
	"github.com/tomtom215/movierecommender/internal/ratings"
	"github.com/tomtom215/movierecommender/internal/recommend"
	"github.com/tomtom215/movierecommender/internal/recommend/algorithms"
	"github.com/tomtom215/movierecommender/internal/recommend/storage"
)

const banner = "=============== %s ===============\n"

// Result is what a console run produced.
type Result struct {
	Metrics     algorithms.RegressionMetrics
	Score       float64
	Recommended bool
	Top         []catalog.Movie
	Version     int
}

// Run trains a model on the configured ratings, evaluates it, predicts one
// user/movie pair, lists the top recommendations for that user and saves
// the model as the next version in the store.
//
// Progress lines go to out; structured logs go to the global logger.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	_, err := Execute(ctx, cfg, out)
	return err
}

// Execute is Run returning what was computed. On error the Result holds
// whatever steps completed.
func Execute(ctx context.Context, cfg *config.Config, out io.Writer) (*Result, error) {
	log := logging.Ctx(ctx).With().Str("component", "console").Logger()
	res := &Result{}

	train, err := ratings.LoadFile(cfg.Data.TrainPath())
	if err != nil {
		return res, fmt.Errorf("load training ratings: %w", err)
	}
	test, err := ratings.LoadFile(cfg.Data.TestPath())
	if err != nil {
		return res, fmt.Errorf("load test ratings: %w", err)
	}
	summary := ratings.Summarize(train)
	log.Info().
		Int("train", len(train)).
		Int("test", len(test)).
		Int("users", summary.Users).
		Int("movies", summary.Movies).
		Msg("ratings loaded")

	fmt.Fprintf(out, banner, "Training the model")
	mf := algorithms.NewMatrixFactorization(cfg.Training.MFConfig())
	if err := mf.Train(ctx, train); err != nil {
		return res, fmt.Errorf("train model: %w", err)
	}
	stats := mf.Stats()
	metrics.RecordTraining(stats.Duration)
	log.Info().
		Dur("duration", stats.Duration).
		Float64("train_rmse", stats.TrainRMSE).
		Msg("training complete")

	fmt.Fprintf(out, banner, "Evaluating the model")
	res.Metrics, err = algorithms.Evaluate(mf, test)
	if err != nil {
		return res, fmt.Errorf("evaluate model: %w", err)
	}
	fmt.Fprintf(out, "Root Mean Squared Error : %v\n", res.Metrics.RMSE)
	fmt.Fprintf(out, "RSquared: %v\n", res.Metrics.RSquared)

	userID, movieID := cfg.Console.UserID, cfg.Console.MovieID
	fmt.Fprintf(out, banner, "Making a prediction")
	res.Score = mf.Score(userID, movieID)
	res.Recommended = recommend.IsRecommended(res.Score, cfg.Console.Threshold)
	if res.Recommended {
		fmt.Fprintf(out, "Movie %d is recommended for user %d\n", movieID, userID)
	} else {
		fmt.Fprintf(out, "Movie %d is not recommended for user %d\n", movieID, userID)
	}

	cat, err := catalog.LoadFile(cfg.Data.MoviesPath(), cfg.Catalog.Schema())
	if err != nil {
		return res, fmt.Errorf("load catalog: %w", err)
	}
	res.Top, err = recommend.TopK(mf, cat, userID, cfg.Console.TopK)
	if err != nil {
		return res, fmt.Errorf("rank catalog: %w", err)
	}
	fmt.Fprintf(out, "Top %d movie recommendations for user %d:\n", cfg.Console.TopK, userID)
	for _, m := range res.Top {
		fmt.Fprintf(out, "Movie ID: %d, Title: %s, Genres: %s\n", m.ID, m.Title, m.Genres)
	}

	fmt.Fprintf(out, banner, "Saving the model to a file")
	res.Version, err = save(ctx, cfg, mf, res.Metrics)
	if err != nil {
		return res, err
	}
	log.Info().
		Str("backend", cfg.Model.Backend).
		Str("path", cfg.Model.Path).
		Int("version", res.Version).
		Msg("model saved")
	return res, nil
}

func save(ctx context.Context, cfg *config.Config, mf *algorithms.MatrixFactorization, eval algorithms.RegressionMetrics) (int, error) {
	store, err := storage.Open(cfg.Model.Backend, cfg.Model.Path)
	if err != nil {
		return 0, fmt.Errorf("open model store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("closing model store")
		}
	}()

	version, err := storage.NextVersion(ctx, store, cfg.Model.Name)
	if err != nil {
		return 0, fmt.Errorf("next model version: %w", err)
	}

	stats := mf.Stats()
	meta := storage.ModelMetadata{
		TrainedAt:          time.Now().UTC(),
		RatingCount:        stats.Ratings,
		MovieCount:         stats.Movies,
		UserCount:          stats.Users,
		RMSE:               eval.RMSE,
		RSquared:           eval.RSquared,
		TrainingDurationMS: stats.Duration.Milliseconds(),
	}
	if err := store.Save(ctx, cfg.Model.Name, version, mf.State(), meta); err != nil {
		return 0, fmt.Errorf("save model: %w", err)
	}

	if cfg.Model.KeepVersions > 0 {
		if err := store.Prune(ctx, cfg.Model.Name, cfg.Model.KeepVersions); err != nil {
			return version, fmt.Errorf("prune old versions: %w", err)
		}
	}
	return version, nil
}
