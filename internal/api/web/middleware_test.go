//go:build unit
// +build unit

package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/movie-catalog/internal/pkg/config"
	"github.com/MGTheTrain/movie-catalog/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware...)
	r.GET("/about", func(c *gin.Context) {
		c.String(http.StatusOK, AboutText)
	})
	return r
}

func TestCORS_AllowAllOrigins(t *testing.T) {
	for _, origins := range [][]string{nil, {"*"}} {
		r := newMiddlewareRouter(CORS(origins))

		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		req.Header.Set("Origin", "http://example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORS_SpecificOrigin(t *testing.T) {
	r := newMiddlewareRouter(CORS([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := newMiddlewareRouter(SecurityHeaders())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Equal(t, AboutText, w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newMiddlewareRouter(RequestLogger(logger.NewWriterLogger(config.LogLevelInfo, &buf)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about?searchMovie=in", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "GET /about status=200")
}
