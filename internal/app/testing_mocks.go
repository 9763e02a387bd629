//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"

	"github.com/stretchr/testify/mock"
)

// MockMovieRepository is a mock implementation of MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *movies.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) List(ctx context.Context, query *movies.MovieQuery) ([]*movies.Movie, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*movies.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, movieID string) (*movies.Movie, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movies.Movie), args.Error(1)
}

func (m *MockMovieRepository) DeleteByID(ctx context.Context, movieID string) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}
