package commands

import (
	"fmt"

	"github.com/MGTheTrain/movie-catalog/internal/app"
	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/infrastructure/persistence"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/config"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"
)

// ServiceFactory opens the movie store described by the config file at
// configPath. The returned func releases the store.
type ServiceFactory func(configPath string) (movies.MovieAdminService, func() error, error)

// NewStoreServiceFactory returns the factory backed by the configured GORM store.
func NewStoreServiceFactory() ServiceFactory {
	return openMovieAdminService
}

func openMovieAdminService(configPath string) (movies.MovieAdminService, func() error, error) {
	cfg, err := config.InitializeWebConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	closeDB := func() error { return persistence.CloseDB(db) }

	if err := persistence.Migrate(db); err != nil {
		_ = closeDB()
		return nil, nil, err
	}

	repo, err := persistence.NewGormMovieRepository(db, log)
	if err != nil {
		_ = closeDB()
		return nil, nil, fmt.Errorf("failed to create movie repository: %w", err)
	}

	service, err := app.NewMovieAdminService(repo, log)
	if err != nil {
		_ = closeDB()
		return nil, nil, fmt.Errorf("failed to create movie admin service: %w", err)
	}

	return service, closeDB, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
