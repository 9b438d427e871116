package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

//go:generate mockery --name PaymentService --output ../mocks
type PaymentService interface {
	GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error)
	List(ctx context.Context, filter *domain.PaymentFilter) ([]dto.PaymentResponse, error)
	RecordWebhook(ctx context.Context, req dto.PaymentWebhookRequest) (*dto.PaymentResponse, error)
}

type PaymentHandler struct {
	*BaseHandler
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// GetPayment godoc
// @Summary Get payment
// @Description Get a payment record by its ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ListPayments godoc
// @Summary List payments
// @Description List payment records under the resolved tenant
// @Tags payments
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param order_id query string false "Filter by order"
// @Param status query string false "Filter by status"
// @Param provider query string false "Filter by provider"
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter := &domain.PaymentFilter{
		OrderID:  c.Query("order_id"),
		Status:   domain.PaymentState(c.Query("status")),
		Provider: c.Query("provider"),
	}
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.Page = page
	}
	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.PageSize = size
	}

	payments, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// PaymentWebhook godoc
// @Summary Record payment event
// @Description Record a normalized payment provider event; replays are idempotent
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.PaymentWebhookRequest true "Payment event"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /payments/webhook [post]
func (h *PaymentHandler) PaymentWebhook(c *gin.Context) {
	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	payment, err := h.service.RecordWebhook(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
