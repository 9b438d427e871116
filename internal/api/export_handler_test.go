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
	"github.com/shopstack/commerce-analytics-api/internal/service"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.ExportService
}

func (s *ExportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.ExportService)
	handler := NewExportHandler(s.mockService, nil)

	s.router = gin.New()
	s.router.POST("/exports", handler.CreateExport)
	s.router.GET("/exports", handler.ListExports)
	s.router.GET("/exports/download", handler.DownloadExport)
	s.router.GET("/exports/:id", handler.GetExport)
}

func TestExportHandler(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}

func (s *ExportHandlerTestSuite) postJSON(payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/exports", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ExportHandlerTestSuite) TestCreateExport_Accepted() {
	resp := &dto.ExportJobResponse{ID: "job-1", Resource: "orders", Format: "csv", Status: "pending"}

	s.mockService.On("Schedule", mock.Anything, mock.AnythingOfType("dto.CreateExportRequest")).Return(resp, nil)

	w := s.postJSON(dto.CreateExportRequest{Resource: "orders"})

	s.Equal(http.StatusAccepted, w.Code)
	var got dto.ExportJobResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal("job-1", got.ID)
	s.Equal("pending", got.Status)
}

func (s *ExportHandlerTestSuite) TestCreateExport_UnknownResourceRejected() {
	s.mockService.On("Schedule", mock.Anything, mock.AnythingOfType("dto.CreateExportRequest")).Return(nil, service.ErrInvalidExportResource)

	w := s.postJSON(dto.CreateExportRequest{Resource: "invoices"})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ExportHandlerTestSuite) TestCreateExport_UnknownFormatRejected() {
	s.mockService.On("Schedule", mock.Anything, mock.AnythingOfType("dto.CreateExportRequest")).Return(nil, service.ErrInvalidExportFormat)

	w := s.postJSON(dto.CreateExportRequest{Resource: "orders", Format: "pdf"})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ExportHandlerTestSuite) TestGetExport_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/exports/ghost", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ExportHandlerTestSuite) TestListExports() {
	jobs := []dto.ExportJobResponse{{ID: "job-1"}, {ID: "job-2"}}
	s.mockService.On("List", mock.Anything).Return(jobs, nil)

	req, _ := http.NewRequest(http.MethodGet, "/exports", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var got []dto.ExportJobResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Len(got, 2)
}

func (s *ExportHandlerTestSuite) TestDownloadExport_StreamsCSV() {
	header := []string{"sku", "name"}
	rows := [][]string{{"SKU-1", "Widget"}, {"SKU-2", "Gadget, large"}}

	s.mockService.On("Rows", mock.Anything, "products", "", "").Return(header, rows, nil)

	req, _ := http.NewRequest(http.MethodGet, "/exports/download?resource=products", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/csv", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "products.csv")
	s.Equal("sku,name\nSKU-1,Widget\nSKU-2,\"Gadget, large\"\n", w.Body.String())
}

func (s *ExportHandlerTestSuite) TestDownloadExport_UnknownResourceRejected() {
	s.mockService.On("Rows", mock.Anything, "invoices", "", "").
		Return(nil, nil, service.ErrInvalidExportResource)

	req, _ := http.NewRequest(http.MethodGet, "/exports/download?resource=invoices", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}
