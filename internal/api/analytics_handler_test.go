package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.AnalyticsService
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.AnalyticsService)
	handler := NewAnalyticsHandler(s.mockService)

	s.router = gin.New()
	s.router.GET("/analytics/sales", handler.GetSalesSummary)
	s.router.GET("/analytics/top-products", handler.GetTopProducts)
	s.router.GET("/analytics/stock-events", handler.ListStockEvents)
	s.router.POST("/analytics/stock-events", handler.AdjustStock)
}

func TestAnalyticsHandler(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AnalyticsHandlerTestSuite) TestGetSalesSummary_ParsesWindow() {
	summary := &dto.SalesSummaryResponse{
		TotalRevenue:      1234.56,
		OrderCount:        42,
		AverageOrderValue: 29.39,
	}

	s.mockService.On("SalesSummary", mock.Anything,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC),
	).Return(summary, nil)

	w := s.get("/analytics/sales?start_time=2026-01-01&end_time=2026-01-31")

	s.Equal(http.StatusOK, w.Code)
	var got dto.SalesSummaryResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(int64(42), got.OrderCount)
	s.InDelta(1234.56, got.TotalRevenue, 0.001)
}

func (s *AnalyticsHandlerTestSuite) TestGetSalesSummary_BadWindowRejected() {
	w := s.get("/analytics/sales?start_time=2026-02-01&end_time=2026-01-01")

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "SalesSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AnalyticsHandlerTestSuite) TestGetTopProducts_DefaultsLimit() {
	s.mockService.On("TopProducts", mock.Anything, mock.Anything, mock.Anything, 10).
		Return([]dto.ProductSalesResponse{{ProductID: "p1", ProductName: "Widget"}}, nil)

	w := s.get("/analytics/top-products")

	s.Equal(http.StatusOK, w.Code)
	var got []dto.ProductSalesResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got, 1)
	s.Equal("p1", got[0].ProductID)
}

func (s *AnalyticsHandlerTestSuite) TestGetTopProducts_CustomLimit() {
	s.mockService.On("TopProducts", mock.Anything, mock.Anything, mock.Anything, 3).
		Return([]dto.ProductSalesResponse{}, nil)

	w := s.get("/analytics/top-products?limit=3")

	s.Equal(http.StatusOK, w.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetTopProducts_BadLimitRejected() {
	w := s.get("/analytics/top-products?limit=many")

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "TopProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AnalyticsHandlerTestSuite) TestListStockEvents_ParsesFilter() {
	s.mockService.On("ListStockEvents", mock.Anything, mock.MatchedBy(func(f *domain.StockEventFilter) bool {
		return f.ProductID == "p1" &&
			f.EventType == domain.StockEventType("restock") &&
			f.Limit == 25 &&
			!f.StartTime.IsZero()
	})).Return([]dto.StockEventResponse{}, nil)

	w := s.get("/analytics/stock-events?product_id=p1&event_type=restock&limit=25&start_time=2026-01-01")

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AnalyticsHandlerTestSuite) TestAdjustStock_Created() {
	event := &dto.StockEventResponse{
		ID:             "ev-1",
		ProductID:      "p1",
		EventType:      "restock",
		QuantityChange: 50,
		QuantityAfter:  75,
	}

	s.mockService.On("AdjustStock", mock.Anything, mock.AnythingOfType("dto.StockAdjustmentRequest")).
		Return(event, nil)

	body, _ := json.Marshal(dto.StockAdjustmentRequest{ProductID: "p1", Change: 50, EventType: "restock"})
	req, _ := http.NewRequest(http.MethodPost, "/analytics/stock-events", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	var got dto.StockEventResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(75, got.QuantityAfter)
}

func (s *AnalyticsHandlerTestSuite) TestAdjustStock_MissingProductRejected() {
	body, _ := json.Marshal(dto.StockAdjustmentRequest{Change: 50, EventType: "restock"})
	req, _ := http.NewRequest(http.MethodPost, "/analytics/stock-events", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "AdjustStock", mock.Anything, mock.Anything)
}

func (s *AnalyticsHandlerTestSuite) TestAdjustStock_UnknownProductNotFound() {
	s.mockService.On("AdjustStock", mock.Anything, mock.AnythingOfType("dto.StockAdjustmentRequest")).
		Return(nil, domain.ErrNotFound)

	body, _ := json.Marshal(dto.StockAdjustmentRequest{ProductID: "ghost", Change: -5, EventType: "correction"})
	req, _ := http.NewRequest(http.MethodPost, "/analytics/stock-events", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}
