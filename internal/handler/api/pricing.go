package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"apprien-go-sdk/internal/handler/dto/request"
	"apprien-go-sdk/internal/handler/dto/response"
	"apprien-go-sdk/internal/handler/httperr"
	"apprien-go-sdk/internal/handler/middleware"
	"apprien-go-sdk/internal/pkg/jwt"
	"apprien-go-sdk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

const receiptAccepted = "receipt accepted"

type PricingHandler struct {
	priceBook  usecase.PriceBook
	jwtService *jwt.Service
}

func NewPricingHandler(priceBook usecase.PriceBook, jwtService *jwt.Service) *PricingHandler {
	return &PricingHandler{
		priceBook:  priceBook,
		jwtService: jwtService,
	}
}

func (h *PricingHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Status: "ok"})
}

func (h *PricingHandler) GetPrices(c *gin.Context) {
	pairs := h.priceBook.Variants(c.Request.Context(), c.Param("store"), c.Param("pkg"))

	resp := response.PricesResponse{Products: []response.VariantPair{}}
	if err := copier.Copy(&resp.Products, &pairs); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPrice answers with the bare variant id, not JSON.
func (h *PricingHandler) GetPrice(c *gin.Context) {
	v, err := h.priceBook.Variant(c.Request.Context(), c.Param("store"), c.Param("pkg"), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "", nil)
		return
	}
	c.String(http.StatusOK, v)
}

func (h *PricingHandler) PostReceipt(c *gin.Context) {
	var form request.ReceiptForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Receipt field is required", nil)
		return
	}

	err := h.priceBook.RecordReceipt(c.Request.Context(), c.Param("store"), c.Param("pkg"), form.Receipt)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyReceipt) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Receipt is empty", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "", nil)
		return
	}
	c.String(http.StatusOK, receiptAccepted)
}

// PostProductsShown reads the iap_ids[i] form fields in index order.
func (h *PricingHandler) PostProductsShown(c *gin.Context) {
	ids := indexedFormValues(c.PostFormMap("iap_ids"))
	n := h.priceBook.RecordImpressions(c.Request.Context(), c.Param("store"), ids)
	c.JSON(http.StatusOK, response.ImpressionsResponse{Recorded: n})
}

func (h *PricingHandler) CheckAuth(c *gin.Context) {
	resp := response.AuthResponse{Status: "ok"}
	resp.Game, _ = middleware.GetGame(c)
	resp.Store, _ = middleware.GetStore(c)
	c.JSON(http.StatusOK, resp)
}

func (h *PricingHandler) PostErrorReport(c *gin.Context) {
	var q request.ErrorReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid error report", nil)
		return
	}
	h.priceBook.RecordErrorReport(c.Request.Context(), usecase.ErrorReport{
		Store:        q.Store,
		Game:         q.StoreGame,
		Message:      q.Message,
		ResponseCode: q.ResponseCode,
	})
	c.JSON(http.StatusOK, response.StatusResponse{Status: "ok"})
}

// IssueToken hands out a token for the game in the path. Only routed in
// debug mode.
func (h *PricingHandler) IssueToken(c *gin.Context) {
	token, err := h.jwtService.GenerateToken(c.Param("pkg"), c.Param("store"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Token generation failed", nil)
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

func indexedFormValues(m map[string]string) []string {
	type indexed struct {
		i int
		v string
	}
	items := make([]indexed, 0, len(m))
	for k, v := range m {
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		items = append(items, indexed{i: i, v: v})
	}
	sort.Slice(items, func(a, b int) bool { return items[a].i < items[b].i })

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.v)
	}
	return out
}
