//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/infrastructure/persistence"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	MovieSearchService movies.MovieSearchService
	MovieAdminService  movies.MovieAdminService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	searchService, err := NewMovieSearchService(dbContext.MovieRepo, log)
	require.NoError(t, err, "Failed to create movie search service")

	adminService, err := NewMovieAdminService(dbContext.MovieRepo, log)
	require.NoError(t, err, "Failed to create movie admin service")

	return &TestServices{
		MovieSearchService: searchService,
		MovieAdminService:  adminService,
		DBContext:          dbContext,
	}
}
