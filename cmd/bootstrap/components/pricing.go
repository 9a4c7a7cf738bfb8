package components

import (
	"context"
	"log/slog"

	"apprien-go-sdk/internal/pkg/clock"
	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/pricing"
	"apprien-go-sdk/internal/pricing/transport"

	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		clock.NewRealClock,
		pricing.NewMetrics,
		fx.Annotate(
			NewHTTPTransport,
			fx.As(new(transport.Transport)),
		),
		NewConnection,
		fx.Annotate(
			func(c *pricing.Connection) *pricing.Connection { return c },
			fx.As(new(pricing.Backend)),
		),
	),
)

func NewHTTPTransport(cfg config.PricingConfig, logger *slog.Logger) *transport.HTTPTransport {
	return transport.NewHTTPTransport(cfg.HTTPTimeout, logger)
}

// NewConnection waits for fire-and-forget requests on shutdown.
func NewConnection(
	lc fx.Lifecycle,
	cfg config.PricingConfig,
	t transport.Transport,
	c clock.Clock,
	metrics *pricing.Metrics,
	logger *slog.Logger,
) *pricing.Connection {
	conn := pricing.NewConnection(pricing.SettingsFromConfig(cfg), t, c, logger, pricing.WithMetrics(metrics))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			conn.Wait()
			return nil
		},
	})

	return conn
}
