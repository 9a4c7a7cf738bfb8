package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"apprien-go-sdk/internal/domain/product"
	"apprien-go-sdk/internal/pkg/errs"
	"apprien-go-sdk/internal/pricing"

	"golang.org/x/sync/errgroup"
)

var ErrParse = errs.ErrParse

// CatalogAdapter supplies the products the game sells. Load errors are the
// adapter's own and are returned as is.
type CatalogAdapter interface {
	Load(ctx context.Context) ([]*product.Product, error)
}

// PriceResolver applies backend variants onto products in place. Every
// failure leaves products on their previous variant; nothing here returns an
// error to the caller beyond what the result values carry.
type PriceResolver interface {
	ResolveAll(ctx context.Context, products []*product.Product) pricing.FetchPricesResult
	ResolveOne(ctx context.Context, p *product.Product) pricing.FetchPriceResult
	ResolveEach(ctx context.Context, products []*product.Product) []pricing.FetchPriceResult
	ProductsShown(ctx context.Context, products []*product.Product)
	PostReceipt(ctx context.Context, receiptJSON string, handler pricing.ReceiptHandler) pricing.PostReceiptResult
}

type priceResolverImpl struct {
	backend     pricing.Backend
	concurrency int
	logger      *slog.Logger
}

// NewPriceResolver bounds ResolveEach to concurrency requests at a time;
// values below one mean one.
func NewPriceResolver(backend pricing.Backend, concurrency int, logger *slog.Logger) PriceResolver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &priceResolverImpl{
		backend:     backend,
		concurrency: concurrency,
		logger:      logger,
	}
}

type pricesPayload struct {
	Products []variantPair `json:"products"`
}

type variantPair struct {
	Base    string `json:"base"`
	Variant string `json:"variant"`
}

func (r *priceResolverImpl) ResolveAll(ctx context.Context, products []*product.Product) pricing.FetchPricesResult {
	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		byID[p.CanonicalID()] = p
	}

	result := r.backend.FetchPrices(ctx)
	if !result.Success {
		r.logger.Warn("price resolution failed, keeping current variants",
			slog.Int("products", len(byID)),
			slog.String("error", result.ErrorMessage),
		)
		return result
	}

	pairs, err := parsePrices(result.RawJSON)
	if err != nil {
		r.logger.Error("failed to parse prices, keeping current variants", slog.String("error", err.Error()))
		return pricing.FetchPricesResult{RawJSON: result.RawJSON, ErrorMessage: err.Error(), Err: err}
	}

	applied := 0
	for _, pair := range pairs {
		p, ok := byID[pair.Base]
		if !ok {
			continue
		}
		if p.ApplyVariant(pair.Variant) {
			applied++
		}
	}
	r.logger.Info("prices resolved",
		slog.Int("products", len(byID)),
		slog.Int("variants_returned", len(pairs)),
		slog.Int("variants_applied", applied),
	)
	return result
}

// parsePrices decodes the whole payload before anything is applied, so a
// malformed body changes no product.
func parsePrices(raw string) ([]variantPair, error) {
	var payload pricesPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode prices"), ErrParse)
	}
	return payload.Products, nil
}

func (r *priceResolverImpl) ResolveOne(ctx context.Context, p *product.Product) pricing.FetchPriceResult {
	result := r.backend.FetchPrice(ctx, p.CanonicalID())
	if !result.Success {
		r.logger.Warn("price resolution failed, keeping current variant",
			slog.String("product", p.CanonicalID()),
			slog.String("error", result.ErrorMessage),
		)
		return result
	}
	if !p.ApplyVariant(result.VariantID) {
		r.logger.Warn("backend returned an empty variant", slog.String("product", p.CanonicalID()))
	}
	return result
}

// ResolveEach runs ResolveOne for every product. Results are in input order
// and one product failing does not stop the others.
func (r *priceResolverImpl) ResolveEach(ctx context.Context, products []*product.Product) []pricing.FetchPriceResult {
	results := make([]pricing.FetchPriceResult, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, p := range products {
		if p == nil {
			continue
		}
		g.Go(func() error {
			results[i] = r.ResolveOne(gctx, p)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *priceResolverImpl) ProductsShown(ctx context.Context, products []*product.Product) {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if p != nil {
			ids = append(ids, p.VariantID())
		}
	}
	if len(ids) == 0 {
		return
	}
	r.backend.NotifyProductsShown(ctx, ids)
}

func (r *priceResolverImpl) PostReceipt(ctx context.Context, receiptJSON string, handler pricing.ReceiptHandler) pricing.PostReceiptResult {
	return r.backend.PostReceipt(ctx, receiptJSON, handler)
}
