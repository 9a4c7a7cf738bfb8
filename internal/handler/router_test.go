//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"apprien-go-sdk/internal/handler"
	"apprien-go-sdk/internal/handler/api"
	"apprien-go-sdk/internal/handler/dto/response"
	"apprien-go-sdk/internal/handler/middleware"
	"apprien-go-sdk/internal/infra/catalog"
	"apprien-go-sdk/internal/infra/memstore"
	"apprien-go-sdk/internal/pkg/clock"
	"apprien-go-sdk/internal/pkg/config"
	"apprien-go-sdk/internal/pkg/jwt"
	"apprien-go-sdk/internal/usecase"
	"apprien-go-sdk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	router     *gin.Engine
	store      *memstore.Store
	jwtService *jwt.Service
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.StubConfig{
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Authorization", "Session-Id"},
			MaxAge:       time.Hour,
		},
	}
	s.store = memstore.New([]catalog.Entry{
		{ID: "gold", Type: "consumable", PriceCents: 99},
		{ID: "vip", Type: "subscription", Store: "apple", PriceCents: 499},
	})
	s.jwtService = jwt.NewService("test-secret-at-least-16", time.Hour)
	book := usecase.NewPriceBook(s.store, clock.NewRealClock(), "seed")

	reg := prometheus.NewRegistry()
	handler.NewRouter(
		s.router, cfg, logger,
		api.NewPricingHandler(book, s.jwtService),
		middleware.NewAuthMiddleware(s.jwtService),
		middleware.NewHTTPMetrics(reg),
		reg,
	)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) token(game, store string) string {
	token, err := s.jwtService.GenerateToken(game, store)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) TestPublicRoutes() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/status", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/error?message=boom&responseCode=0&storeGame=my.game&store=google", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(s.store.ErrorReports(), 1)
	s.Equal("boom", s.store.ErrorReports()[0].Message)
}

func (s *RouterTestSuite) TestAuth() {
	url := "/api/v1/stores/google/games/my.game/auth"

	testCases := []struct {
		name       string
		token      string
		expectCode int
	}{
		{name: "missing token", token: "", expectCode: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", expectCode: http.StatusUnauthorized},
		{name: "other game", token: s.token("other.game", "google"), expectCode: http.StatusForbidden},
		{name: "other store", token: s.token("my.game", "apple"), expectCode: http.StatusForbidden},
		{name: "scoped token", token: s.token("my.game", "google"), expectCode: http.StatusOK},
		{name: "unscoped token", token: s.token("", ""), expectCode: http.StatusOK},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, tc.token)
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("expired token", func() {
		expired := jwt.NewService("test-secret-at-least-16", -time.Minute)
		token, err := expired.GenerateToken("my.game", "google")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("claims are echoed", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, s.token("my.game", "google"))

		var resp response.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(response.AuthResponse{Status: "ok", Game: "my.game", Store: "google"}, resp)
	})
}

func (s *RouterTestSuite) TestPrices() {
	token := s.token("my.game", "")

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/stores/apple/games/my.game/prices", token)

	var resp response.PricesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp.Products, 2)
	s.Equal("gold", resp.Products[0].Base)
	s.Equal("vip", resp.Products[1].Base)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/stores/google/games/my.game/products/vip/prices", token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
}

func (s *RouterTestSuite) TestProductsShown() {
	fields := [][2]string{{"iap_ids[0]", "z_gold.apprien_99_abcd"}}
	rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/api/v1/stores/google/shown/products", fields, s.token("my.game", "google"))

	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(s.store.Impressions(), 1)
	s.Equal("gold", s.store.Impressions()[0].CanonicalID)
}

func (s *RouterTestSuite) TestCORS() {
	headers := http.Header{}
	headers.Set("Origin", "http://localhost:3000")
	headers.Set("Access-Control-Request-Method", http.MethodGet)
	headers.Set("Access-Control-Request-Headers", "Authorization, Session-Id")

	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodOptions, "/status", headers)

	httptest.AssertHeaders(s.T(), rec, map[string]string{
		"Access-Control-Allow-Origin": "http://localhost:3000",
	})
	httptest.AssertHeaderListContains(s.T(), rec, "Access-Control-Allow-Headers", "Authorization", "Session-Id")
}

func (s *RouterTestSuite) TestTokenRouteHiddenOutsideDebug() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/stores/google/games/my.game/tokens", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/status", "")

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `pricing_stub_http_requests_total{method="GET",path="/status",status="200"} 1`)
}
