package middleware

import (
	"log/slog"
	"slices"

	"mansion-pos/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes the request id so the front desk can quote
// it when reporting a failed transaction. An empty origin list falls back to
// the default set since gin-contrib/cors rejects a config with every origin
// disabled.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		slog.Warn("cors allow origins empty, using defaults")
		defaults := config.DefaultCORSConfig()
		cfg.AllowOrigins = defaults.AllowOrigins
		if len(cfg.AllowMethods) == 0 {
			cfg.AllowMethods = defaults.AllowMethods
		}
		if len(cfg.AllowHeaders) == 0 {
			cfg.AllowHeaders = defaults.AllowHeaders
		}
	}
	expose := cfg.ExposeHeaders
	if !slices.Contains(expose, RequestIDHeader) {
		expose = append(slices.Clone(expose), RequestIDHeader)
	}
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Debug("cors configured", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(corsCfg)
}
