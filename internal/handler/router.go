package handler

import (
	"log/slog"
	"net/http"

	"apprien-go-sdk/internal/handler/api"
	"apprien-go-sdk/internal/handler/middleware"
	"apprien-go-sdk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.StubConfig,
	logger *slog.Logger,
	pricingHandler *api.PricingHandler,
	authMiddleware *middleware.AuthMiddleware,
	httpMetrics *middleware.HTTPMetrics,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger, httpMetrics)
	setupRoutes(engine, pricingHandler, authMiddleware)
	engine.GET("/metrics", gin.WrapH(middleware.MetricsHandler(gatherer)))
}

func setupMiddleware(engine *gin.Engine, cfg config.StubConfig, logger *slog.Logger, httpMetrics *middleware.HTTPMetrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(httpMetrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h *api.PricingHandler, authMiddleware *middleware.AuthMiddleware) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/status", Handler: h.Status},
		{Method: http.MethodPost, Path: "/error", Handler: h.PostErrorReport},
	})

	stores := engine.Group("/api/v1/stores/:store")
	stores.Use(authMiddleware.RequireAuth())
	{
		addRoutes(stores, []route{
			{Method: http.MethodPost, Path: "/shown/products", Handler: h.PostProductsShown},
		})

		game := stores.Group("/games/:pkg")
		addRoutes(game, []route{
			{Method: http.MethodGet, Path: "/prices", Handler: h.GetPrices},
			{Method: http.MethodGet, Path: "/products/:id/prices", Handler: h.GetPrice},
			{Method: http.MethodPost, Path: "/receipts", Handler: h.PostReceipt},
			{Method: http.MethodGet, Path: "/auth", Handler: h.CheckAuth},
		})
	}

	if gin.Mode() == gin.DebugMode {
		engine.POST("/api/v1/stores/:store/games/:pkg/tokens", h.IssueToken)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
