package redisstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"apprien-go-sdk/internal/infra"
	"apprien-go-sdk/internal/infra/catalog"
	"apprien-go-sdk/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const (
	pricesKey      = "prices"
	receiptsKey    = "receipts"
	impressionsKey = "impressions"
	reportsKey     = "error_reports"
)

// Store keeps the stub server's state in Redis so several stub instances can
// share it. Prices are a hash keyed by canonical id; everything clients post
// is appended to a list as JSON.
//
// The PriceStore methods cannot return errors; Redis failures are logged and
// read as empty.
type Store struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ usecase.PriceStore = (*Store)(nil)

func New(client *redis.Client, prefix string, logger *slog.Logger) *Store {
	return &Store{client: client, prefix: prefix, logger: logger}
}

// Open connects to url (redis://...) and pings it.
func Open(ctx context.Context, url, prefix string, logger *slog.Logger) (*Store, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, infra.WrapErr(logger, infra.KindInvalid, "parse redis url", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, infra.WrapErr(logger, infra.KindIO, "ping redis", err)
	}
	return New(client, prefix, logger), nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

// Seed replaces the price table with the catalog entries.
func (s *Store) Seed(ctx context.Context, entries []catalog.Entry) error {
	fields := make(map[string]any, len(entries))
	for _, e := range entries {
		b, err := json.Marshal(usecase.PriceRow{CanonicalID: e.ID, PriceCents: e.PriceCents, Store: e.Store})
		if err != nil {
			return err
		}
		fields[e.ID] = b
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key(pricesKey))
		if len(fields) > 0 {
			pipe.HSet(ctx, s.key(pricesKey), fields)
		}
		return nil
	})
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindIO, "seed prices", err)
	}
	return nil
}

// Prices are ordered by canonical id.
func (s *Store) Prices(ctx context.Context) []usecase.PriceRow {
	raw, err := s.client.HGetAll(ctx, s.key(pricesKey)).Result()
	if err != nil {
		s.logger.Error("redis read prices failed", slog.String("error", err.Error()))
		return nil
	}
	rows := make([]usecase.PriceRow, 0, len(raw))
	for id, v := range raw {
		var row usecase.PriceRow
		if err := json.Unmarshal([]byte(v), &row); err != nil {
			s.logger.Warn("skipping malformed price row", slog.String("id", id), slog.String("error", err.Error()))
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CanonicalID < rows[j].CanonicalID })
	return rows
}

func (s *Store) Price(ctx context.Context, canonicalID string) (usecase.PriceRow, bool) {
	v, err := s.client.HGet(ctx, s.key(pricesKey), canonicalID).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Error("redis read price failed", slog.String("id", canonicalID), slog.String("error", err.Error()))
		}
		return usecase.PriceRow{}, false
	}
	var row usecase.PriceRow
	if err := json.Unmarshal([]byte(v), &row); err != nil {
		return usecase.PriceRow{}, false
	}
	return row, true
}

func (s *Store) AddReceipt(ctx context.Context, r usecase.Receipt) {
	s.push(ctx, receiptsKey, r)
}

func (s *Store) AddImpressions(ctx context.Context, imps []usecase.Impression) {
	items := make([]any, len(imps))
	for i := range imps {
		items[i] = imps[i]
	}
	s.push(ctx, impressionsKey, items...)
}

func (s *Store) AddErrorReport(ctx context.Context, r usecase.ErrorReport) {
	s.push(ctx, reportsKey, r)
}

func (s *Store) Receipts(ctx context.Context) ([]usecase.Receipt, error) {
	return readList[usecase.Receipt](ctx, s, receiptsKey)
}

func (s *Store) Impressions(ctx context.Context) ([]usecase.Impression, error) {
	return readList[usecase.Impression](ctx, s, impressionsKey)
}

func (s *Store) ErrorReports(ctx context.Context) ([]usecase.ErrorReport, error) {
	return readList[usecase.ErrorReport](ctx, s, reportsKey)
}

func (s *Store) push(ctx context.Context, name string, items ...any) {
	if len(items) == 0 {
		return
	}
	values := make([]any, 0, len(items))
	for _, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			s.logger.Error("encode item failed", slog.String("list", name), slog.String("error", err.Error()))
			return
		}
		values = append(values, b)
	}
	if err := s.client.RPush(ctx, s.key(name), values...).Err(); err != nil {
		s.logger.Error("redis append failed", slog.String("list", name), slog.String("error", err.Error()))
	}
}

func readList[T any](ctx context.Context, s *Store, name string) ([]T, error) {
	raw, err := s.client.LRange(ctx, s.key(name), 0, -1).Result()
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindIO, "read "+name, err)
	}
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		var item T
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			return nil, infra.WrapErr(s.logger, infra.KindInvalid, "decode "+name, err)
		}
		out = append(out, item)
	}
	return out, nil
}
