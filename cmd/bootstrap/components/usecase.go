package components

import (
	"log/slog"

	"apprien-go-sdk/internal/infra/catalog"
	"apprien-go-sdk/internal/pkg/clock"
	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/pricing"
	"apprien-go-sdk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			NewCatalogAdapter,
			fx.As(new(usecase.CatalogAdapter)),
		),
		NewPriceResolver,
		usecase.NewConnectionTester,
	),
)

var StubUseCaseModule = fx.Module("usecase/stub",
	fx.Provide(
		clock.NewRealClock,
		NewPriceBook,
	),
)

func NewCatalogAdapter(cfg config.CatalogConfig, logger *slog.Logger) *catalog.YAMLAdapter {
	return catalog.NewYAMLAdapter(cfg.File, logger)
}

func NewPriceResolver(cfg config.PricingConfig, backend pricing.Backend, logger *slog.Logger) usecase.PriceResolver {
	return usecase.NewPriceResolver(backend, cfg.ResolveConcurrency, logger)
}

func NewPriceBook(cfg config.StubConfig, store usecase.PriceStore, c clock.Clock) usecase.PriceBook {
	return usecase.NewPriceBook(store, c, cfg.HashSeed)
}
