package bootstrap

import (
	"apprien-go-sdk/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PricingConfig { return cfg.Pricing },
		func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
	),
)

var StubConfigModule = fx.Module("config/stub",
	fx.Provide(
		config.LoadStubConfig,
		func(cfg config.StubConfig) config.CatalogConfig { return cfg.Catalog },
	),
)
