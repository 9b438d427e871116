package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/metrics"
	"github.com/shopstack/commerce-analytics-api/pkg/utils"
)

//go:generate mockery --name OrderService --output ../mocks
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context, filter *domain.OrderFilter) ([]dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*dto.OrderResponse, error)
}

type OrderHandler struct {
	*BaseHandler
	service OrderService
	metrics *metrics.APIMetrics
}

func NewOrderHandler(service OrderService, m *metrics.APIMetrics) *OrderHandler {
	return &OrderHandler{service: service, metrics: m}
}

// CreateOrder godoc
// @Summary Create order
// @Description Create an order; stock is decremented and sale events recorded atomically
// @Tags orders
// @Accept json
// @Produce json
// @Param body body dto.CreateOrderRequest true "Order object"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.OrdersCreated.Inc()
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder godoc
// @Summary Get order
// @Description Get an order with its items by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListOrders godoc
// @Summary List orders
// @Description List orders with filtering
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param customer_id query string false "Filter by customer"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Param start_time query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	orders, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Move an order through its status machine
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param body body dto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	order, err := h.service.UpdateStatus(h.RequestCtx(c), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func orderFilterFromQuery(c *gin.Context) (*domain.OrderFilter, error) {
	filter := &domain.OrderFilter{
		CustomerID:    c.Query("customer_id"),
		Status:        domain.OrderStatus(c.Query("status")),
		PaymentStatus: domain.PaymentStatus(c.Query("payment_status")),
	}

	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		filter.Page = page
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		filter.PageSize = size
	}
	if v := c.Query("start_time"); v != "" {
		t, err := utils.ParseWindowTime(v, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if v := c.Query("end_time"); v != "" {
		t, err := utils.ParseWindowTime(v, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}

	return filter, nil
}
