package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere in a column.
// Wildcards in term match literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// titleContainsClause folds the column and the pattern with the same function,
// so a title always matches its own text.
func titleContainsClause(dialect string) string {
	fold := "LOWER"
	if dialect == "sqlite" {
		fold = sqliteCaseFoldFunc
	}
	return fmt.Sprintf(`%s(title) LIKE %s(?) ESCAPE '\'`, fold, fold)
}

type gormMovieRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMovieRepository creates a new GORM-based MovieRepository implementation
func NewGormMovieRepository(db *gorm.DB, logger logger.Logger) (movies.MovieRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormMovieRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMovieRepository) Create(ctx context.Context, movie *movies.Movie) error {
	if err := movie.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MovieModel{}
	model.FromDomain(movie)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	r.logger.Info("Created movie with id ", movie.ID)
	return nil
}

// List returns movies in the store's default order; no ORDER BY is applied.
func (r *gormMovieRepository) List(ctx context.Context, query *movies.MovieQuery) ([]*movies.Movie, error) {
	var modelList []*models.MovieModel
	dbQuery := r.db.WithContext(ctx).Model(&models.MovieModel{})

	if !query.MatchesAll() {
		dbQuery = dbQuery.Where(titleContainsClause(r.db.Dialector.Name()), containsPattern(query.Title))
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}

	domainList := make([]*movies.Movie, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormMovieRepository) GetByID(ctx context.Context, movieID string) (*movies.Movie, error) {
	var model models.MovieModel
	if err := r.db.WithContext(ctx).Where("id = ?", movieID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie with ID %s: %w", movieID, movies.ErrMovieNotFound)
		}
		return nil, fmt.Errorf("failed to fetch movie: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMovieRepository) DeleteByID(ctx context.Context, movieID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", movieID).Delete(&models.MovieModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %s: %w", movieID, movies.ErrMovieNotFound)
	}

	r.logger.Info("Deleted movie with id ", movieID)
	return nil
}
