//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/stretchr/testify/assert"
)

func TestMovieModel_DomainConversion(t *testing.T) {
	movie := &movies.Movie{
		ID:              "6f1c2a8e-3b4d-4c1e-9a7f-2d5e8b0c1a23",
		DateTimeCreated: time.Now(),
		Title:           "Interstellar",
		Description:     "A team of explorers travel through a wormhole.",
		ImageURL:        "https://example.com/interstellar.jpg",
		URL:             "https://example.com/interstellar",
	}

	model := &MovieModel{}
	model.FromDomain(movie)

	assert.Equal(t, movie.ID, model.ID)
	assert.Equal(t, movie.Title, model.Title)
	assert.Equal(t, movie, model.ToDomain())
	assert.Equal(t, "movies", MovieModel{}.TableName())
}
