package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// movieSearchService implements the MovieSearchService interface
type movieSearchService struct {
	movieRepository movies.MovieRepository
	logger          logger.Logger
}

// NewMovieSearchService creates a new instance of MovieSearchService
func NewMovieSearchService(movieRepository movies.MovieRepository, logger logger.Logger) (movies.MovieSearchService, error) {
	if movieRepository == nil {
		return nil, fmt.Errorf("movie repository must not be nil")
	}
	return &movieSearchService{
		movieRepository: movieRepository,
		logger:          logger,
	}, nil
}

// Search returns the movies whose title contains term, or every movie when term is empty
func (s *movieSearchService) Search(ctx context.Context, term string) ([]*movies.Movie, error) {
	result, err := s.movieRepository.List(ctx, movies.NewMovieQuery(term))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return result, nil
}

// movieImportRecord is one entry of a YAML import document
type movieImportRecord struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	URL         string `yaml:"url"`
}

// movieAdminService implements the MovieAdminService interface
type movieAdminService struct {
	movieRepository movies.MovieRepository
	logger          logger.Logger
	now             func() time.Time
}

// NewMovieAdminService creates a new instance of MovieAdminService
func NewMovieAdminService(movieRepository movies.MovieRepository, logger logger.Logger) (movies.MovieAdminService, error) {
	if movieRepository == nil {
		return nil, fmt.Errorf("movie repository must not be nil")
	}
	return &movieAdminService{
		movieRepository: movieRepository,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// Add validates and persists a new movie
func (s *movieAdminService) Add(ctx context.Context, title, description, imageURL, url string) (*movies.Movie, error) {
	movie := &movies.Movie{
		ID:              uuid.NewString(),
		DateTimeCreated: s.now().UTC(),
		Title:           title,
		Description:     description,
		ImageURL:        imageURL,
		URL:             url,
	}

	if err := s.movieRepository.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to add movie %q: %w", title, err)
	}

	return movie, nil
}

// Import adds every movie of a YAML list read from r
func (s *movieAdminService) Import(ctx context.Context, r io.Reader) ([]*movies.Movie, error) {
	var records []movieImportRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode import document: %w", err)
	}

	created := make([]*movies.Movie, 0, len(records))
	for i, record := range records {
		movie, err := s.Add(ctx, record.Title, record.Description, record.ImageURL, record.URL)
		if err != nil {
			return created, fmt.Errorf("record %d: %w", i+1, err)
		}
		created = append(created, movie)
	}

	s.logger.Info("Imported ", len(created), " movies")
	return created, nil
}

// List retrieves the movies matching query
func (s *movieAdminService) List(ctx context.Context, query *movies.MovieQuery) ([]*movies.Movie, error) {
	result, err := s.movieRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return result, nil
}

// GetByID retrieves a movie by ID
func (s *movieAdminService) GetByID(ctx context.Context, movieID string) (*movies.Movie, error) {
	movie, err := s.movieRepository.GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return movie, nil
}

// DeleteByID removes a movie by ID
func (s *movieAdminService) DeleteByID(ctx context.Context, movieID string) error {
	if err := s.movieRepository.DeleteByID(ctx, movieID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
