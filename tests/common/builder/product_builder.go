//go:build unit || e2e

package builder

import (
	"fmt"
	"testing"

	"apprien-go-sdk/internal/domain/product"
	"apprien-go-sdk/internal/domain/variant"
)

type ProductBuilder struct {
	CanonicalID string
	Kind        product.Kind
	Store       string
	PriceCents  int64
	Hash        string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		CanonicalID: "base_iap_id",
		Kind:        product.KindConsumable,
		PriceCents:  500,
		Hash:        "dfa3",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.New(b.CanonicalID, b.Kind)
	if err != nil {
		t.Fatalf("build product %q: %v", b.CanonicalID, err)
	}
	if b.Store != "" {
		p.WithStoreScope(b.Store)
	}
	return p
}

func (b *ProductBuilder) BuildDefinition() product.Definition {
	return product.Definition{
		ID:    b.CanonicalID,
		Kind:  string(b.Kind),
		Store: b.Store,
	}
}

// VariantID is the id the pricing backend would return for the product.
func (b *ProductBuilder) VariantID() string {
	return variant.Decorate(b.CanonicalID, b.PriceCents, b.Hash)
}

// BuildProducts returns n consumables with ids prefix0..prefix(n-1).
func BuildProducts(t *testing.T, prefix string, n int) []*product.Product {
	t.Helper()
	products := make([]*product.Product, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s%d", prefix, i)
		products = append(products, NewProductBuilder().With(func(b *ProductBuilder) { b.CanonicalID = id }).BuildDomain(t))
	}
	return products
}

// PricesJSON renders the bulk prices body for the given base to variant pairs.
func PricesJSON(pairs ...[2]string) string {
	body := `{"products":[`
	for i, p := range pairs {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"base":%q,"variant":%q}`, p[0], p[1])
	}
	return body + "]}"
}
