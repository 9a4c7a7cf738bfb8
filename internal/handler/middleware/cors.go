package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"apprien-go-sdk/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// clientHeaders are set on every pricing client request and must survive a
// preflight whatever CORS_ALLOW_HEADERS says.
var clientHeaders = []string{"Authorization", "Session-Id"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := withClientHeaders(cfg.AllowHeaders)
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(corsCfg)
}

func withClientHeaders(configured []string) []string {
	out := slices.Clone(configured)
	for _, h := range clientHeaders {
		if !slices.ContainsFunc(out, func(c string) bool { return strings.EqualFold(strings.TrimSpace(c), h) }) {
			out = append(out, h)
		}
	}
	return out
}
