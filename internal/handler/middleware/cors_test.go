//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mansion-pos/internal/handler/middleware"
	"mansion-pos/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSEngine(t *testing.T, cfg config.CORSConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var mw gin.HandlerFunc
	require.NotPanics(t, func() { mw = middleware.NewCORSMiddleware(cfg) })

	engine := gin.New()
	engine.Use(mw)
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestNewCORSMiddleware(t *testing.T) {
	t.Run("zero config falls back to default origins", func(t *testing.T) {
		engine := newCORSEngine(t, config.CORSConfig{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id is always exposed", func(t *testing.T) {
		engine := newCORSEngine(t, config.DefaultCORSConfig())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:8080")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		// gin-contrib/cors canonicalises names, so X-Request-ID goes out as X-Request-Id.
		exposed := strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers"))
		assert.Contains(t, exposed, strings.ToLower(middleware.RequestIDHeader))
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		engine := newCORSEngine(t, config.DefaultCORSConfig())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
