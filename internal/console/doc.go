// MovieRecommender - Matrix Factorization Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierecommender

/*
Package console implements the offline train, evaluate and save pipeline
behind cmd/recommender.

A run prints its progress as plain lines:

	=============== Training the model ===============
	=============== Evaluating the model ===============
	Root Mean Squared Error : 0.91
	RSquared: 0.42
	=============== Making a prediction ===============
	Movie 10 is recommended for user 6
	Top 5 movie recommendations for user 6:
	Movie ID: 1, Title: Toy Story (1995), Genres: Adventure|Animation|Children|Comedy|Fantasy
	...
	=============== Saving the model to a file ===============

The saved model lands in the configured store as the next version, where a
running server picks it up on its next reload poll.
*/
package console
