package memstore

import (
	"context"
	"sync"

	"apprien-go-sdk/internal/infra/catalog"
	"apprien-go-sdk/internal/usecase"

	"github.com/jinzhu/copier"
)

// Store keeps the stub server's price table and everything clients post, in
// memory. Getters return copies.
type Store struct {
	mu          sync.RWMutex
	prices      []usecase.PriceRow
	index       map[string]int
	receipts    []usecase.Receipt
	impressions []usecase.Impression
	reports     []usecase.ErrorReport
}

var _ usecase.PriceStore = (*Store)(nil)

// New seeds the price table from catalog entries. A later entry with the
// same id replaces the earlier one.
func New(entries []catalog.Entry) *Store {
	s := &Store{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		row := usecase.PriceRow{CanonicalID: e.ID, PriceCents: e.PriceCents, Store: e.Store}
		if i, ok := s.index[e.ID]; ok {
			s.prices[i] = row
			continue
		}
		s.index[e.ID] = len(s.prices)
		s.prices = append(s.prices, row)
	}
	return s
}

func (s *Store) Prices(_ context.Context) []usecase.PriceRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.prices)
}

func (s *Store) Price(_ context.Context, canonicalID string) (usecase.PriceRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[canonicalID]
	if !ok {
		return usecase.PriceRow{}, false
	}
	return s.prices[i], true
}

// SetPrice adds or reprices a product.
func (s *Store) SetPrice(row usecase.PriceRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[row.CanonicalID]; ok {
		s.prices[i] = row
		return
	}
	s.index[row.CanonicalID] = len(s.prices)
	s.prices = append(s.prices, row)
}

func (s *Store) AddReceipt(_ context.Context, r usecase.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = append(s.receipts, r)
}

func (s *Store) AddImpressions(_ context.Context, imps []usecase.Impression) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.impressions = append(s.impressions, imps...)
}

func (s *Store) AddErrorReport(_ context.Context, r usecase.ErrorReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

func (s *Store) Receipts() []usecase.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.receipts)
}

func (s *Store) Impressions() []usecase.Impression {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.impressions)
}

func (s *Store) ErrorReports() []usecase.ErrorReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.reports)
}

func snapshot[T any](src []T) []T {
	out := make([]T, 0, len(src))
	if err := copier.Copy(&out, &src); err != nil {
		return append(out, src...)
	}
	return out
}
