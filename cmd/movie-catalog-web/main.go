// cmd/movie-catalog-web/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGTheTrain/movie-catalog/internal/api/web"
	"github.com/MGTheTrain/movie-catalog/internal/app"
	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/infrastructure/persistence"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/config"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/web-app.yaml"
	}

	webConfig, err := config.InitializeWebConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&webConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	db, searchService, err := initializeDependencies(webConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(webConfig, searchService, log)
}

// initializeDependencies opens and migrates the store and builds the search service
func initializeDependencies(cfg *config.WebConfig, log logger.Logger) (*gorm.DB, movies.MovieSearchService, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, nil, err
	}
	log.Info("Database migrations completed successfully")

	movieRepo, err := persistence.NewGormMovieRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create movie repository: %w", err)
	}

	searchService, err := app.NewMovieSearchService(movieRepo, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create movie search service: %w", err)
	}

	return db, searchService, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.WebConfig, searchService movies.MovieSearchService, log logger.Logger) error {
	tmpl, err := web.LoadTemplates(cfg.TemplateDir)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(web.RequestLogger(log))
	r.Use(web.CORS(cfg.AllowedOrigins))
	r.Use(web.SecurityHeaders())
	r.SetHTMLTemplate(tmpl)

	web.SetupRoutes(r, searchService, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
