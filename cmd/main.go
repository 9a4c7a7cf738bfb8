package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"apprien-go-sdk/cmd/bootstrap"
	"apprien-go-sdk/internal/usecase"

	"go.uber.org/fx"
)

const runTimeout = 30 * time.Second

type deps struct {
	fx.In

	Logger   *slog.Logger
	Catalog  usecase.CatalogAdapter
	Resolver usecase.PriceResolver
	Tester   usecase.ConnectionTester
}

// run checks the connection, resolves the catalog once and reports which
// variant each product ended up with. It returns false when the backend could
// not be reached or rejected the token.
func run(ctx context.Context, d deps) bool {
	report := d.Tester.Test(ctx)
	if !report.OK() {
		d.Logger.Error("connection test failed",
			slog.Bool("service_online", report.ServiceOnline),
			slog.Bool("token_valid", report.TokenValid),
		)
		return false
	}

	products, err := d.Catalog.Load(ctx)
	if err != nil {
		d.Logger.Error("failed to load catalog", slog.String("error", err.Error()))
		return false
	}

	result := d.Resolver.ResolveAll(ctx, products)
	if !result.Success {
		d.Logger.Warn("using default product ids", slog.String("error", result.ErrorMessage))
	}

	for _, p := range products {
		d.Logger.Info("product",
			slog.String("canonical_id", p.CanonicalID()),
			slog.String("variant_id", p.VariantID()),
			slog.Bool("resolved", p.IsResolved()),
		)
	}

	d.Resolver.ProductsShown(ctx, products)
	return true
}

func main() {
	var d deps
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Populate(&d),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	ok := run(ctx, d)
	cancel()

	// Stop waits for the products-shown notification to go out.
	if err := app.Stop(context.Background()); err != nil {
		d.Logger.Error("failed to stop", "error", err)
	}

	if !ok {
		os.Exit(1)
	}
}
