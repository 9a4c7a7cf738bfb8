//go:build e2e

package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"apprien-go-sdk/cmd/bootstrap"
	"apprien-go-sdk/cmd/bootstrap/components"
	"apprien-go-sdk/internal/infra/memstore"
	"apprien-go-sdk/internal/infra/redisstore"
	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/pkg/jwt"
	"apprien-go-sdk/internal/pricing"
	"apprien-go-sdk/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	TestPackage   = "com.example.game"
	testJWTSecret = "e2e-secret-at-least-16-chars"
)

// TestCatalog sells one product only in the Apple store; the client runs as
// a Google Play integration.
const TestCatalog = `products:
  - id: gold_pack
    type: consumable
    price_cents: 99
  - id: no_ads
    type: non_consumable
    price_cents: 199
  - id: vip_pass
    type: subscription
    store: apple
    price_cents: 499
`

// ------------------------------------------------------------
// Stub server and client wired the way the binaries wire them
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite

	// UseRedis backs the stub with a miniredis instance instead of memory.
	UseRedis bool

	Server   *httptest.Server
	Store    usecase.PriceStore
	JWT      *jwt.Service
	Backend  *pricing.Connection
	Catalog  usecase.CatalogAdapter
	Resolver usecase.PriceResolver
	Tester   usecase.ConnectionTester
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	catalogFile := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogFile, []byte(TestCatalog), 0o600))

	stubCfg := newStubConfig(catalogFile)
	if s.UseRedis {
		stubCfg.RedisURL = "redis://" + miniredis.RunT(t).Addr() + "/0"
	}

	engine := s.startStub(t, stubCfg)
	s.Server = httptest.NewServer(engine)
	t.Cleanup(s.Server.Close)

	token, err := s.JWT.GenerateToken(TestPackage, "google")
	require.NoError(t, err, "failed to issue test token")

	cfg := config.NewTestConfig()
	cfg.Pricing.BaseURL = s.Server.URL
	cfg.Pricing.PackageName = TestPackage
	cfg.Pricing.Token = token
	cfg.Catalog.File = catalogFile
	s.startClient(t, cfg)
}

func (s *SharedSuite) startStub(t *testing.T, cfg config.StubConfig) *gin.Engine {
	var engine *gin.Engine
	app := fx.New(
		fx.Provide(
			func() config.StubConfig { return cfg },
			func() config.CatalogConfig { return cfg.Catalog },
			func() *gin.Engine { return gin.New() },
			newDiscardLogger,
		),
		bootstrap.MetricsModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.StubUseCaseModule,
		components.HandlerModule,
		fx.Populate(&engine, &s.Store, &s.JWT),
		fx.NopLogger,
	)
	startApp(t, app)
	return engine
}

func (s *SharedSuite) startClient(t *testing.T, cfg config.Config) {
	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			func() config.PricingConfig { return cfg.Pricing },
			func() config.CatalogConfig { return cfg.Catalog },
			newDiscardLogger,
		),
		bootstrap.MetricsModule,
		components.PricingModule,
		components.UseCaseModule,
		fx.Populate(&s.Backend, &s.Catalog, &s.Resolver, &s.Tester),
		fx.NopLogger,
	)
	startApp(t, app)
}

func startApp(t *testing.T, app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
}

func newStubConfig(catalogFile string) config.StubConfig {
	return config.StubConfig{
		Port:        "0",
		JWTSecret:   testJWTSecret,
		JWTDuration: time.Hour,
		HashSeed:    "e2e",
		RedisPrefix: "e2e:",
		Catalog:     config.CatalogConfig{File: catalogFile},
		Log:         config.LogConfig{Level: "error", Format: "text"},
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ------------------------------------------------------------
// Store inspection shared by both backends
// ------------------------------------------------------------
func (s *SharedSuite) Receipts() []usecase.Receipt {
	switch st := s.Store.(type) {
	case *memstore.Store:
		return st.Receipts()
	case *redisstore.Store:
		out, err := st.Receipts(context.Background())
		s.Require().NoError(err)
		return out
	}
	s.FailNow("unexpected store type")
	return nil
}

func (s *SharedSuite) Impressions() []usecase.Impression {
	switch st := s.Store.(type) {
	case *memstore.Store:
		return st.Impressions()
	case *redisstore.Store:
		out, err := st.Impressions(context.Background())
		s.Require().NoError(err)
		return out
	}
	s.FailNow("unexpected store type")
	return nil
}

func (s *SharedSuite) ErrorReports() []usecase.ErrorReport {
	switch st := s.Store.(type) {
	case *memstore.Store:
		return st.ErrorReports()
	case *redisstore.Store:
		out, err := st.ErrorReports(context.Background())
		s.Require().NoError(err)
		return out
	}
	s.FailNow("unexpected store type")
	return nil
}
