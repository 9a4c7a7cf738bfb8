package components

import (
	"apprien-go-sdk/internal/handler"
	"apprien-go-sdk/internal/handler/api"
	"apprien-go-sdk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		middleware.NewAuthMiddleware,
		middleware.NewHTTPMetrics,
	),
	fx.Invoke(handler.NewRouter),
)
