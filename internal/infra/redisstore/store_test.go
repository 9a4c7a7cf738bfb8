//go:build unit

package redisstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"apprien-go-sdk/internal/infra"
	"apprien-go-sdk/internal/infra/catalog"
	"apprien-go-sdk/internal/infra/redisstore"
	"apprien-go-sdk/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	store  *redisstore.Store
	logger *slog.Logger
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	client := redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	s.store = redisstore.New(client, "stub:", s.logger)
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestPrices() {
	ctx := context.Background()
	s.Require().NoError(s.store.Seed(ctx, []catalog.Entry{
		{ID: "vip", Type: "subscription", Store: "apple", PriceCents: 499},
		{ID: "gold", Type: "consumable", PriceCents: 99},
	}))

	s.Equal([]usecase.PriceRow{
		{CanonicalID: "gold", PriceCents: 99},
		{CanonicalID: "vip", PriceCents: 499, Store: "apple"},
	}, s.store.Prices(ctx))

	row, ok := s.store.Price(ctx, "vip")
	s.True(ok)
	s.Equal("apple", row.Store)

	_, ok = s.store.Price(ctx, "missing")
	s.False(ok)

	s.True(s.server.Exists("stub:prices"))

	s.Require().NoError(s.store.Seed(ctx, []catalog.Entry{{ID: "gems", Type: "consumable", PriceCents: 5}}))
	s.Len(s.store.Prices(ctx), 1)
}

func (s *RedisStoreTestSuite) TestLists() {
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	s.store.AddReceipt(ctx, usecase.Receipt{Store: "google", Game: "g", Payload: "{}", ReceivedAt: at})
	s.store.AddImpressions(ctx, []usecase.Impression{{VariantID: "a"}, {VariantID: "b"}})
	s.store.AddImpressions(ctx, nil)
	s.store.AddErrorReport(ctx, usecase.ErrorReport{Message: "boom", ResponseCode: 500})

	receipts, err := s.store.Receipts(ctx)
	s.Require().NoError(err)
	s.Require().Len(receipts, 1)
	s.True(at.Equal(receipts[0].ReceivedAt))

	imps, err := s.store.Impressions(ctx)
	s.Require().NoError(err)
	s.Len(imps, 2)

	reports, err := s.store.ErrorReports(ctx)
	s.Require().NoError(err)
	s.Equal(500, reports[0].ResponseCode)
}

func (s *RedisStoreTestSuite) TestPriceBookOnRedis() {
	ctx := context.Background()
	s.Require().NoError(s.store.Seed(ctx, []catalog.Entry{{ID: "gold", Type: "consumable", PriceCents: 99}}))
	book := usecase.NewPriceBook(s.store, nil, "seed")

	pairs := book.Variants(ctx, "google", "my.game")
	s.Require().Len(pairs, 1)
	s.Equal("gold", pairs[0].Base)
}

func (s *RedisStoreTestSuite) TestUnavailable() {
	ctx := context.Background()
	s.server.Close()

	s.Nil(s.store.Prices(ctx))
	_, ok := s.store.Price(ctx, "gold")
	s.False(ok)
	s.store.AddReceipt(ctx, usecase.Receipt{Payload: "{}"})

	_, err := s.store.Receipts(ctx)
	s.True(infra.IsKind(err, infra.KindIO))
}

func TestOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := miniredis.RunT(t)

	store, err := redisstore.Open(context.Background(), "redis://"+server.Addr()+"/0", "stub:", logger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = store.Close()

	_, err = redisstore.Open(context.Background(), "not a url", "stub:", logger)
	if !infra.IsKind(err, infra.KindInvalid) {
		t.Fatalf("expected invalid url error, got %v", err)
	}
}
