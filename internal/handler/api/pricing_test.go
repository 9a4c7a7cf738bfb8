//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"apprien-go-sdk/internal/handler/api"
	"apprien-go-sdk/internal/handler/dto/response"
	"apprien-go-sdk/internal/handler/middleware"
	"apprien-go-sdk/internal/pkg/errs"
	"apprien-go-sdk/internal/pkg/jwt"
	"apprien-go-sdk/internal/usecase"
	"apprien-go-sdk/tests/common/httptest"
	usecasemock "apprien-go-sdk/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	gamePath  = "/api/v1/stores/google/games/my.game"
	jwtSecret = "test-secret-at-least-16"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockPriceBook *usecasemock.MockPriceBook
	jwtService    *jwt.Service
	handler       *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPriceBook = usecasemock.NewMockPriceBook(s.mockCtrl)
	s.jwtService = jwt.NewService(jwtSecret, time.Hour)
	s.handler = api.NewPricingHandler(s.mockPriceBook, s.jwtService)

	s.router.GET("/status", s.handler.Status)
	s.router.POST("/error", s.handler.PostErrorReport)
	s.router.GET("/api/v1/stores/:store/games/:pkg/prices", s.handler.GetPrices)
	s.router.GET("/api/v1/stores/:store/games/:pkg/products/:id/prices", s.handler.GetPrice)
	s.router.POST("/api/v1/stores/:store/games/:pkg/receipts", s.handler.PostReceipt)
	s.router.POST("/api/v1/stores/:store/shown/products", s.handler.PostProductsShown)
	s.router.POST("/api/v1/stores/:store/games/:pkg/tokens", s.handler.IssueToken)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestStatus() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/status", "")

	var resp response.StatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal("ok", resp.Status)
}

func (s *PricingHandlerTestSuite) TestGetPrices() {
	s.Run("success: lists variants", func() {
		s.mockPriceBook.EXPECT().Variants(gomock.Any(), "google", "my.game").
			Return([]usecase.VariantPair{{Base: "A", Variant: "z_A.apprien_99_abcd"}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, gamePath+"/prices", "")

		var resp response.PricesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal([]response.VariantPair{{Base: "A", Variant: "z_A.apprien_99_abcd"}}, resp.Products)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockPriceBook.EXPECT().Variants(gomock.Any(), "google", "my.game").Return([]usecase.VariantPair{})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, gamePath+"/prices", "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"products":[]}`, rec.Body.String())
	})
}

func (s *PricingHandlerTestSuite) TestGetPrice() {
	s.Run("success: plain text variant", func() {
		s.mockPriceBook.EXPECT().Variant(gomock.Any(), "google", "my.game", "gold").Return("z_gold.apprien_99_abcd", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, gamePath+"/products/gold/prices", "")

		httptest.AssertTextResponse(s.T(), rec, http.StatusOK, "z_gold.apprien_99_abcd")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "not found", err: errs.Wrap(usecase.ErrProductNotFound, "gold"), expectCode: http.StatusNotFound, expectMsg: "Product not found"},
			{name: "unexpected", err: errs.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal Server Error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPriceBook.EXPECT().Variant(gomock.Any(), "google", "my.game", "gold").Return("", tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, gamePath+"/products/gold/prices", "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *PricingHandlerTestSuite) TestPostReceipt() {
	url := gamePath + "/receipts"

	s.Run("success: stores the receipt field", func() {
		s.mockPriceBook.EXPECT().RecordReceipt(gomock.Any(), "google", "my.game", `{"id":1}`).Return(nil)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, [][2]string{{"deal=receipt", `{"id":1}`}}, "")

		httptest.AssertTextResponse(s.T(), rec, http.StatusOK, "receipt accepted")
	})

	s.Run("error: 400 Bad Request without the field", func() {
		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, [][2]string{{"receipt", "x"}}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Receipt field is required")
	})

	s.Run("error: 400 Bad Request on blank receipt", func() {
		s.mockPriceBook.EXPECT().RecordReceipt(gomock.Any(), "google", "my.game", " ").Return(usecase.ErrEmptyReceipt)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, url, [][2]string{{"deal=receipt", " "}}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Receipt is empty")
	})
}

func (s *PricingHandlerTestSuite) TestPostProductsShown() {
	s.mockPriceBook.EXPECT().RecordImpressions(gomock.Any(), "google", []string{"a", "b", "c"}).Return(3)

	fields := [][2]string{{"iap_ids[2]", "c"}, {"iap_ids[0]", "a"}, {"iap_ids[1]", "b"}, {"other", "x"}}
	rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, "/api/v1/stores/google/shown/products", fields, "")

	var resp response.ImpressionsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(3, resp.Recorded)
}

func (s *PricingHandlerTestSuite) TestPostErrorReport() {
	s.mockPriceBook.EXPECT().RecordErrorReport(gomock.Any(), usecase.ErrorReport{
		Store:        "google",
		Game:         "my.game",
		Message:      "fetch prices: HTTP error 500",
		ResponseCode: 500,
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/error?message=fetch+prices%3A+HTTP+error+500&responseCode=500&storeGame=my.game&store=google", "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PricingHandlerTestSuite) TestIssueToken() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, gamePath+"/tokens", "")

	var resp response.TokenResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)

	claims, err := s.jwtService.ValidateToken(resp.Token)
	s.Require().NoError(err)
	s.Equal("my.game", claims.Game)
	s.Equal("google", claims.Store)
}

func TestPricesResponseJSON(t *testing.T) {
	b, err := json.Marshal(response.PricesResponse{Products: []response.VariantPair{{Base: "A", Variant: "A-v"}}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"products":[{"base":"A","variant":"A-v"}]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
