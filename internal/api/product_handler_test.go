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

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.ProductService
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.ProductService)
	handler := NewProductHandler(s.mockService)

	s.router = gin.New()
	s.router.POST("/products", handler.CreateProduct)
	s.router.GET("/products", handler.ListProducts)
	s.router.GET("/products/low-stock", handler.ListLowStock)
	s.router.POST("/products/reindex", handler.ReindexProducts)
	s.router.GET("/products/:id", handler.GetProduct)
	s.router.DELETE("/products/:id", handler.DeleteProduct)
}

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestCreateProduct_Success() {
	req := dto.CreateProductRequest{Name: "Wireless Mouse", SKU: "WM-1001", Price: 29.99}
	resp := &dto.ProductResponse{ID: "p1", Name: "Wireless Mouse", SKU: "WM-1001"}

	s.mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateProductRequest")).Return(resp, nil)

	body, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusCreated, w.Code)
	var got dto.ProductResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("p1", got.ID)
}

func (s *ProductHandlerTestSuite) TestCreateProduct_MissingSKURejected() {
	body, _ := json.Marshal(dto.CreateProductRequest{Name: "No SKU", Price: 10})
	httpReq, _ := http.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/products/ghost", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ProductHandlerTestSuite) TestListProducts_ParsesFilter() {
	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f *domain.ProductFilter) bool {
		return f.Query == "mouse" && f.Category == "electronics" &&
			f.MinPrice == 10 && f.MaxPrice == 100 &&
			f.Active != nil && *f.Active
	})).Return([]dto.ProductResponse{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/products?q=mouse&category=electronics&min_price=10&max_price=100&active=true", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *ProductHandlerTestSuite) TestListProducts_BadPriceRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/products?min_price=cheap", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *ProductHandlerTestSuite) TestListLowStock() {
	results := []dto.ProductResponse{{ID: "p1", StockQuantity: 2, MinStockLevel: 20}}
	s.mockService.On("ListLowStock", mock.Anything).Return(results, nil)

	req, _ := http.NewRequest(http.MethodGet, "/products/low-stock", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var got []dto.ProductResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got, 1)
}

func (s *ProductHandlerTestSuite) TestReindexProducts_Accepted() {
	s.mockService.On("Reindex", mock.Anything).Return(42, nil)

	req, _ := http.NewRequest(http.MethodPost, "/products/reindex", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusAccepted, w.Code)
	var got map[string]int
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(42, got["enqueued"])
}

func (s *ProductHandlerTestSuite) TestDeleteProduct_NoContent() {
	s.mockService.On("Delete", mock.Anything, "p1").Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/products/p1", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *ProductHandlerTestSuite) TestDeleteProduct_UnscopedRejected() {
	s.mockService.On("Delete", mock.Anything, "p1").Return(domain.ErrTenantNotResolved)

	req, _ := http.NewRequest(http.MethodDelete, "/products/p1", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}
