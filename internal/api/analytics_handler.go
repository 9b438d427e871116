package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/pkg/utils"
)

//go:generate mockery --name AnalyticsService --output ../mocks
type AnalyticsService interface {
	SalesSummary(ctx context.Context, start, end time.Time) (*dto.SalesSummaryResponse, error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]dto.ProductSalesResponse, error)
	ListStockEvents(ctx context.Context, filter *domain.StockEventFilter) ([]dto.StockEventResponse, error)
	AdjustStock(ctx context.Context, req dto.StockAdjustmentRequest) (*dto.StockEventResponse, error)
}

type AnalyticsHandler struct {
	*BaseHandler
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetSalesSummary godoc
// @Summary Sales summary
// @Description Aggregate order revenue over a time window, defaulting to the trailing 30 days
// @Tags analytics
// @Produce json
// @Param start_time query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.SalesSummaryResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/sales [get]
func (h *AnalyticsHandler) GetSalesSummary(c *gin.Context) {
	start, end, err := utils.Window(c.Query("start_time"), c.Query("end_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	summary, err := h.service.SalesSummary(h.RequestCtx(c), start, end)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTopProducts godoc
// @Summary Top products
// @Description Rank products by quantity sold over a time window
// @Tags analytics
// @Produce json
// @Param start_time query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} dto.ProductSalesResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/top-products [get]
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	start, end, err := utils.Window(c.Query("start_time"), c.Query("end_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
	}

	products, err := h.service.TopProducts(h.RequestCtx(c), start, end, limit)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// ListStockEvents godoc
// @Summary List stock events
// @Description List inventory movements under the resolved tenant
// @Tags analytics
// @Produce json
// @Param product_id query string false "Filter by product"
// @Param event_type query string false "Filter by event type"
// @Param start_time query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} dto.StockEventResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/stock-events [get]
func (h *AnalyticsHandler) ListStockEvents(c *gin.Context) {
	filter := &domain.StockEventFilter{
		ProductID: c.Query("product_id"),
		EventType: domain.StockEventType(c.Query("event_type")),
	}
	if v := c.Query("start_time"); v != "" {
		t, err := utils.ParseWindowTime(v, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.StartTime = t
	}
	if v := c.Query("end_time"); v != "" {
		t, err := utils.ParseWindowTime(v, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.EndTime = t
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.Limit = limit
	}

	events, err := h.service.ListStockEvents(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// AdjustStock godoc
// @Summary Adjust stock
// @Description Apply a manual inventory movement and record the stock event
// @Tags analytics
// @Accept json
// @Produce json
// @Param body body dto.StockAdjustmentRequest true "Stock adjustment"
// @Success 201 {object} dto.StockEventResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/stock-events [post]
func (h *AnalyticsHandler) AdjustStock(c *gin.Context) {
	var req dto.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	event, err := h.service.AdjustStock(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}
