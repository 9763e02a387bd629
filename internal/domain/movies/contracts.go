package movies

import (
	"context"
	"io"
)

// MovieSearchService defines the read side used by the search page.
type MovieSearchService interface {
	// Search returns every movie whose title contains term, ignoring case.
	// An empty term returns all movies in the store's default order.
	Search(ctx context.Context, term string) ([]*Movie, error)
}

// MovieAdminService defines the administrative operations that create and remove
// movie records outside the web request path.
type MovieAdminService interface {
	// Add validates and persists a new movie. ID and creation time are assigned.
	Add(ctx context.Context, title, description, imageURL, url string) (*Movie, error)

	// Import reads a YAML list of movies from r and adds each of them.
	// It returns the movies created before the first failure.
	Import(ctx context.Context, r io.Reader) ([]*Movie, error)

	// List retrieves the movies matching query.
	List(ctx context.Context, query *MovieQuery) ([]*Movie, error)

	// GetByID retrieves a movie by ID.
	GetByID(ctx context.Context, movieID string) (*Movie, error)

	// DeleteByID removes a movie by ID.
	DeleteByID(ctx context.Context, movieID string) error
}

// MovieRepository defines the interface for Movie-related operations
type MovieRepository interface {
	// Create adds a new Movie to the database
	Create(ctx context.Context, movie *Movie) error
	// List lists Movies in the database with optional filter
	List(ctx context.Context, query *MovieQuery) ([]*Movie, error)
	// GetByID retrieves a Movie from the database by ID
	GetByID(ctx context.Context, movieID string) (*Movie, error)
	// DeleteByID deletes a Movie in the database by ID
	DeleteByID(ctx context.Context, movieID string) error
}
