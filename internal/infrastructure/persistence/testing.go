//go:build integration
// +build integration

package persistence

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/config"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestPostgresDSNEnv names the variable holding an admin DSN for PostgreSQL tests.
// PostgreSQL tests are skipped when it is unset.
const TestPostgresDSNEnv = "MOVIE_CATALOG_TEST_PG_DSN"

// TestContext holds test database and repositories
type TestContext struct {
	DB        *gorm.DB
	MovieRepo movies.MovieRepository
}

// SetupTestDB initializes a migrated, empty test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteInMemoryDSN,
		}

	case config.PostgresDbType:
		adminDSN := os.Getenv(TestPostgresDSNEnv)
		if adminDSN == "" {
			t.Skipf("%s not set", TestPostgresDSNEnv)
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    adminDSN,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	movieRepo, err := NewGormMovieRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create movie repository")

	return &TestContext{
		DB:        db,
		MovieRepo: movieRepo,
	}
}

// CreateTestMovie builds a valid movie with the given title
func CreateTestMovie(t *testing.T, title string) *movies.Movie {
	t.Helper()

	return &movies.Movie{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now().UTC(),
		Title:           title,
		Description:     "Description of " + title,
		URL:             "https://example.com/movies/" + uuid.NewString(),
	}
}

// SeedMovies stores one movie per title, in order, and returns them
func SeedMovies(t *testing.T, repo movies.MovieRepository, titles ...string) []*movies.Movie {
	t.Helper()

	seeded := make([]*movies.Movie, 0, len(titles))
	for _, title := range titles {
		movie := CreateTestMovie(t, title)
		require.NoError(t, repo.Create(context.Background(), movie))
		seeded = append(seeded, movie)
	}
	return seeded
}

// Titles extracts movie titles, preserving order
func Titles(list []*movies.Movie) []string {
	titles := make([]string, len(list))
	for i, m := range list {
		titles[i] = m.Title
	}
	return titles
}
