package usecase

//go:generate mockgen -source=pricebook.go -destination=../../tests/mock/usecase/pricebook.go -package=usecasemock

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"apprien-go-sdk/internal/domain/variant"
	"apprien-go-sdk/internal/pkg/clock"
	"apprien-go-sdk/internal/pkg/errs"
)

// The price book backs the local stub of the pricing API. It prices every
// catalog product at a fixed amount and records what clients send back.

var (
	ErrProductNotFound = errs.New("product not found")
	ErrEmptyReceipt    = errs.New("receipt payload is empty")
)

const variantHashLen = 4

type PriceRow struct {
	CanonicalID string
	PriceCents  int64
	Store       string
}

type Receipt struct {
	Store      string
	Game       string
	Payload    string
	ReceivedAt time.Time
}

type Impression struct {
	Store       string
	VariantID   string
	CanonicalID string
	ShownAt     time.Time
}

type ErrorReport struct {
	Store        string
	Game         string
	Message      string
	ResponseCode int
	ReceivedAt   time.Time
}

type VariantPair struct {
	Base    string
	Variant string
}

type PriceStore interface {
	Prices(ctx context.Context) []PriceRow
	Price(ctx context.Context, canonicalID string) (PriceRow, bool)
	AddReceipt(ctx context.Context, r Receipt)
	AddImpressions(ctx context.Context, imps []Impression)
	AddErrorReport(ctx context.Context, r ErrorReport)
}

type PriceBook interface {
	Variants(ctx context.Context, store, game string) []VariantPair
	Variant(ctx context.Context, store, game, canonicalID string) (string, error)
	RecordReceipt(ctx context.Context, store, game, payload string) error
	RecordImpressions(ctx context.Context, store string, variantIDs []string) int
	RecordErrorReport(ctx context.Context, r ErrorReport)
}

type priceBookImpl struct {
	store PriceStore
	clock clock.Clock
	seed  string
}

func NewPriceBook(store PriceStore, clk clock.Clock, seed string) PriceBook {
	return &priceBookImpl{store: store, clock: clk, seed: seed}
}

// Variants lists a variant for every product sold in store. Products without
// a store scope are sold everywhere.
func (b *priceBookImpl) Variants(ctx context.Context, store, game string) []VariantPair {
	rows := b.store.Prices(ctx)
	pairs := make([]VariantPair, 0, len(rows))
	for _, row := range rows {
		if !sellsIn(row, store) {
			continue
		}
		pairs = append(pairs, VariantPair{Base: row.CanonicalID, Variant: b.decorate(store, game, row)})
	}
	return pairs
}

func (b *priceBookImpl) Variant(ctx context.Context, store, game, canonicalID string) (string, error) {
	row, ok := b.store.Price(ctx, canonicalID)
	if !ok || !sellsIn(row, store) {
		return "", errs.Wrapf(ErrProductNotFound, "product %q in store %q", canonicalID, store)
	}
	return b.decorate(store, game, row), nil
}

func (b *priceBookImpl) RecordReceipt(ctx context.Context, store, game, payload string) error {
	if strings.TrimSpace(payload) == "" {
		return ErrEmptyReceipt
	}
	b.store.AddReceipt(ctx, Receipt{
		Store:      store,
		Game:       game,
		Payload:    payload,
		ReceivedAt: b.clock.Now(),
	})
	return nil
}

// RecordImpressions stores one impression per non-empty id and returns how
// many were stored.
func (b *priceBookImpl) RecordImpressions(ctx context.Context, store string, variantIDs []string) int {
	now := b.clock.Now()
	imps := make([]Impression, 0, len(variantIDs))
	for _, id := range variantIDs {
		if id == "" {
			continue
		}
		imps = append(imps, Impression{
			Store:       store,
			VariantID:   id,
			CanonicalID: variant.Undecorate(id),
			ShownAt:     now,
		})
	}
	if len(imps) > 0 {
		b.store.AddImpressions(ctx, imps)
	}
	return len(imps)
}

func (b *priceBookImpl) RecordErrorReport(ctx context.Context, r ErrorReport) {
	r.ReceivedAt = b.clock.Now()
	b.store.AddErrorReport(ctx, r)
}

func (b *priceBookImpl) decorate(store, game string, row PriceRow) string {
	return variant.Decorate(row.CanonicalID, row.PriceCents, b.hash(store, game, row))
}

// hash is stable for a given seed and price, so repeated fetches agree.
func (b *priceBookImpl) hash(store, game string, row PriceRow) string {
	sum := md5.Sum([]byte(b.seed + "|" + store + "|" + game + "|" + row.CanonicalID + "|" + strconv.FormatInt(row.PriceCents, 10)))
	return hex.EncodeToString(sum[:])[:variantHashLen]
}

func sellsIn(row PriceRow, store string) bool {
	return row.Store == "" || row.Store == store
}
