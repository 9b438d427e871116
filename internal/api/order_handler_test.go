package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.OrderService
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.OrderService)
	handler := NewOrderHandler(s.mockService, nil)

	s.router = gin.New()
	s.router.POST("/orders", handler.CreateOrder)
	s.router.GET("/orders", handler.ListOrders)
	s.router.GET("/orders/:id", handler.GetOrder)
	s.router.PUT("/orders/:id/status", handler.UpdateOrderStatus)
}

func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) postJSON(path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *OrderHandlerTestSuite) TestCreateOrder_Success() {
	req := dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	}
	resp := &dto.OrderResponse{ID: "o1", CustomerID: "cust-1", Status: "pending"}

	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(resp, nil)

	w := s.postJSON("/orders", req)

	s.Equal(http.StatusCreated, w.Code)
	var got dto.OrderResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("o1", got.ID)
}

func (s *OrderHandlerTestSuite) TestCreateOrder_MissingItemsRejected() {
	w := s.postJSON("/orders", dto.CreateOrderRequest{CustomerID: "cust-1"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *OrderHandlerTestSuite) TestCreateOrder_InsufficientStockConflicts() {
	req := dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 999}},
	}

	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(nil, domain.ErrInsufficientStock)

	w := s.postJSON("/orders", req)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *OrderHandlerTestSuite) TestCreateOrder_UnknownProductNotFound() {
	// A product outside the tenant's scope is indistinguishable from a
	// product that does not exist.
	req := dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "other-tenant-product", Quantity: 1}},
	}

	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(nil, domain.ErrNotFound)

	w := s.postJSON("/orders", req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OrderHandlerTestSuite) TestCreateOrder_CrossTenantWriteForbidden() {
	req := dto.CreateOrderRequest{
		TenantID:   "someone-else",
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	}

	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).Return(nil, domain.ErrCrossTenantWrite)

	w := s.postJSON("/orders", req)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *OrderHandlerTestSuite) TestGetOrder_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/orders/ghost", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OrderHandlerTestSuite) TestListOrders_ParsesWindow() {
	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.OrderFilter) bool {
		return f.Status == domain.OrderStatusShipped &&
			!f.StartTime.IsZero() && !f.EndTime.IsZero() &&
			f.StartTime.Before(f.EndTime)
	})).Return([]dto.OrderResponse{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/orders?status=shipped&start_time=2024-03-01&end_time=2024-03-31", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *OrderHandlerTestSuite) TestListOrders_BadWindowRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/orders?start_time=not-a-date", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *OrderHandlerTestSuite) TestUpdateOrderStatus_InvalidTransitionConflicts() {
	s.mockService.On("UpdateStatus", mock.Anything, "o1", domain.OrderStatusDelivered).Return(nil, domain.ErrInvalidTransition)

	body, _ := json.Marshal(dto.UpdateOrderStatusRequest{Status: "delivered"})
	req, _ := http.NewRequest(http.MethodPut, "/orders/o1/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *OrderHandlerTestSuite) TestUpdateOrderStatus_Success() {
	resp := &dto.OrderResponse{ID: "o1", Status: "confirmed"}
	s.mockService.On("UpdateStatus", mock.Anything, "o1", domain.OrderStatusConfirmed).Return(resp, nil)

	body, _ := json.Marshal(dto.UpdateOrderStatusRequest{Status: "confirmed"})
	req, _ := http.NewRequest(http.MethodPut, "/orders/o1/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var got dto.OrderResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("confirmed", got.Status)
}
