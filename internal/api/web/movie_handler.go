package web

import (
	"net/http"

	"github.com/MGTheTrain/movie-catalog/internal/domain/movies"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	// SearchParam is the query parameter carrying the search term
	SearchParam = "searchMovie"
	// HomeTemplate renders the search results
	HomeTemplate = "home.html"
	// AboutText is the fixed body of the about page
	AboutText = "This is the about page"
)

// MovieHandler defines the page handlers of the movie catalog
type MovieHandler interface {
	Home(ctx *gin.Context)
	About(ctx *gin.Context)
}

type movieHandler struct {
	movieSearchService movies.MovieSearchService
	logger             logger.Logger
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movieSearchService movies.MovieSearchService, logger logger.Logger) MovieHandler {
	return &movieHandler{
		movieSearchService: movieSearchService,
		logger:             logger,
	}
}

// Home lists all movies, or the ones whose title contains the searchMovie term
func (handler *movieHandler) Home(ctx *gin.Context) {
	searchTerm := ctx.Query(SearchParam)

	movieList, err := handler.movieSearchService.Search(ctx.Request.Context(), searchTerm)
	if err != nil {
		handler.logger.Error("movie search for ", searchTerm, " failed: ", err)
		ctx.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.HTML(http.StatusOK, HomeTemplate, gin.H{
		"searchTerm": searchTerm,
		"movies":     movieList,
	})
}

// About returns the fixed about text
func (handler *movieHandler) About(ctx *gin.Context) {
	ctx.String(http.StatusOK, AboutText)
}
