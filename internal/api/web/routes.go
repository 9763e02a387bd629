package web

import (
	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the pages and the static assets. The engine must
// already hold the parsed templates.
func SetupRoutes(r *gin.Engine, movieSearchService movies.MovieSearchService, log logger.Logger) {
	movieHandler := NewMovieHandler(movieSearchService, log)
	r.GET("/", movieHandler.Home)
	r.GET("/about", movieHandler.About)

	r.StaticFS("/static", StaticFS())
}
