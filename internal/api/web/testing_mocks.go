//go:build unit
// +build unit

package web

import (
	"context"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"

	"github.com/stretchr/testify/mock"
)

// MockMovieSearchService is a mock implementation of MovieSearchService
type MockMovieSearchService struct {
	mock.Mock
}

func (m *MockMovieSearchService) Search(ctx context.Context, term string) ([]*movies.Movie, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*movies.Movie), args.Error(1)
}
