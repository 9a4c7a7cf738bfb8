package components

import (
	"context"
	"log/slog"

	"apprien-go-sdk/internal/infra/catalog"
	"apprien-go-sdk/internal/infra/memstore"
	"apprien-go-sdk/internal/infra/redisstore"
	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPriceStore,
	),
)

// NewPriceStore seeds the stub's price table from the catalog file. Redis is
// used when STUB_REDIS_URL is set, memory otherwise.
func NewPriceStore(lc fx.Lifecycle, cfg config.StubConfig, logger *slog.Logger) (usecase.PriceStore, error) {
	entries, err := catalog.ReadFile(logger, cfg.Catalog.File)
	if err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		logger.Info("using in-memory price store", slog.Int("products", len(entries)))
		return memstore.New(entries), nil
	}

	ctx := context.Background()
	store, err := redisstore.Open(ctx, cfg.RedisURL, cfg.RedisPrefix, logger)
	if err != nil {
		return nil, err
	}
	if err := store.Seed(ctx, entries); err != nil {
		_ = store.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	logger.Info("using redis price store", slog.Int("products", len(entries)), slog.String("prefix", cfg.RedisPrefix))
	return store, nil
}
