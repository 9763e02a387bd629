//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbTypes = []string{config.SqliteDbType, config.PostgresDbType}

func TestGormMovieRepository_List(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "lowercase term matches any case", term: "in", expected: []string{"Inception", "Interstellar"}},
		{name: "uppercase term", term: "MATRIX", expected: []string{"The Matrix"}},
		{name: "inner substring", term: "stell", expected: []string{"Interstellar"}},
		{name: "space is part of the term", term: "e m", expected: []string{"The Matrix"}},
		{name: "no match", term: "zzz", expected: []string{}},
		{name: "empty term lists all", term: "", expected: []string{"Inception", "Interstellar", "The Matrix"}},
	}

	for _, dbType := range dbTypes {
		for _, tt := range tests {
			t.Run(dbType+"/"+tt.name, func(t *testing.T) {
				tc := SetupTestDB(t, dbType)
				SeedMovies(t, tc.MovieRepo, "Inception", "Interstellar", "The Matrix")

				result, err := tc.MovieRepo.List(context.Background(), movies.NewMovieQuery(tt.term))
				require.NoError(t, err)
				assert.ElementsMatch(t, tt.expected, Titles(result))
			})
		}
	}
}

func TestGormMovieRepository_List_NonASCIITitles(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "exact title with accent", term: "Ébano", expected: []string{"Ébano"}},
		{name: "exact uppercase title", term: "ÉCOLE", expected: []string{"ÉCOLE"}},
		{name: "uppercase accented letter", term: "É", expected: []string{"Ébano", "Amélie", "ÉCOLE"}},
		{name: "lowercase accented letter", term: "é", expected: []string{"Ébano", "Amélie", "ÉCOLE"}},
		{name: "lowercase term for uppercase title", term: "école", expected: []string{"ÉCOLE"}},
		{name: "uppercase term for mixed case title", term: "AMÉLIE", expected: []string{"Amélie"}},
	}

	for _, dbType := range dbTypes {
		for _, tt := range tests {
			t.Run(dbType+"/"+tt.name, func(t *testing.T) {
				tc := SetupTestDB(t, dbType)
				SeedMovies(t, tc.MovieRepo, "Ébano", "Amélie", "ÉCOLE", "Inception")

				result, err := tc.MovieRepo.List(context.Background(), movies.NewMovieQuery(tt.term))
				require.NoError(t, err)
				assert.ElementsMatch(t, tt.expected, Titles(result))
			})
		}
	}
}

func TestGormMovieRepository_List_TitleFindsItself(t *testing.T) {
	titles := []string{"Inception", "100% Wolf", "my_movie", "C:\\Temp", "Ébano", "ÉCOLE", "Amélie", "Ærø"}

	for _, dbType := range dbTypes {
		t.Run(dbType, func(t *testing.T) {
			tc := SetupTestDB(t, dbType)
			SeedMovies(t, tc.MovieRepo, titles...)

			for _, title := range titles {
				result, err := tc.MovieRepo.List(context.Background(), movies.NewMovieQuery(title))
				require.NoError(t, err)
				assert.Contains(t, Titles(result), title, "title %q not found by its own text", title)
			}
		})
	}
}

func TestGormMovieRepository_List_WildcardsMatchLiterally(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedMovies(t, tc.MovieRepo, "100% Wolf", "Wolf Children", "my_movie", "my movie")

	ctx := context.Background()

	result, err := tc.MovieRepo.List(ctx, movies.NewMovieQuery("%"))
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Wolf"}, Titles(result))

	result, err = tc.MovieRepo.List(ctx, movies.NewMovieQuery("_"))
	require.NoError(t, err)
	assert.Equal(t, []string{"my_movie"}, Titles(result))
}

func TestGormMovieRepository_List_EmptyStore(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	result, err := tc.MovieRepo.List(context.Background(), movies.NewMovieQuery("x"))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGormMovieRepository_List_NilQuery(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	SeedMovies(t, tc.MovieRepo, "Inception", "Up")

	result, err := tc.MovieRepo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestGormMovieRepository_CreateAndGetByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	seeded := SeedMovies(t, tc.MovieRepo, "Arrival")

	fetched, err := tc.MovieRepo.GetByID(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0].Title, fetched.Title)
	assert.Equal(t, seeded[0].Description, fetched.Description)
	assert.Equal(t, seeded[0].URL, fetched.URL)
}

func TestGormMovieRepository_Create_InvalidMovie(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	movie := CreateTestMovie(t, "")
	err := tc.MovieRepo.Create(context.Background(), movie)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestGormMovieRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.MovieRepo.GetByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, movies.ErrMovieNotFound)
}

func TestGormMovieRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	seeded := SeedMovies(t, tc.MovieRepo, "Arrival", "Sicario")
	ctx := context.Background()

	require.NoError(t, tc.MovieRepo.DeleteByID(ctx, seeded[0].ID))

	remaining, err := tc.MovieRepo.List(ctx, movies.NewMovieQuery(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"Sicario"}, Titles(remaining))

	err = tc.MovieRepo.DeleteByID(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, movies.ErrMovieNotFound)
}
