package product

import (
	"strings"
	"sync"
)

// Product is one purchasable SKU. The canonical id is the join key for price
// resolution and never changes; the variant id starts equal to it and is
// replaced when the pricing backend returns a variant.
type Product struct {
	canonicalID string
	kind        Kind
	storeScope  *string

	mu        sync.RWMutex
	variantID string
}

func New(canonicalID string, kind Kind) (*Product, error) {
	canonicalID = strings.TrimSpace(canonicalID)
	if canonicalID == "" {
		return nil, ErrEmptyCanonicalID
	}
	if _, err := NewKind(string(kind)); err != nil {
		return nil, err
	}
	return &Product{
		canonicalID: canonicalID,
		kind:        kind,
		variantID:   canonicalID,
	}, nil
}

func FromDefinition(def Definition) (*Product, error) {
	kind, err := NewKind(def.Kind)
	if err != nil {
		return nil, err
	}
	p, err := New(def.ID, kind)
	if err != nil {
		return nil, err
	}
	if store := strings.TrimSpace(def.Store); store != "" {
		p.storeScope = &store
	}
	return p, nil
}

// WithStoreScope restricts the product to one storefront. Resolution does not
// filter on it.
func (p *Product) WithStoreScope(store string) *Product {
	p.storeScope = &store
	return p
}

func (p *Product) CanonicalID() string { return p.canonicalID }
func (p *Product) Kind() Kind          { return p.kind }
func (p *Product) StoreScope() *string { return p.storeScope }

func (p *Product) VariantID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.variantID
}

// ApplyVariant replaces the variant id. Empty values are ignored so the
// product always has a usable id.
func (p *Product) ApplyVariant(variantID string) bool {
	if variantID == "" {
		return false
	}
	p.mu.Lock()
	p.variantID = variantID
	p.mu.Unlock()
	return true
}

// IsResolved reports whether a variant different from the canonical id has
// been applied.
func (p *Product) IsResolved() bool {
	return p.VariantID() != p.canonicalID
}

// VariantIDs returns the current variant id of each product, in order.
func VariantIDs(products []*Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.VariantID())
	}
	return ids
}
