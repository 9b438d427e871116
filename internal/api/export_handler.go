package api

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/metrics"
	"github.com/shopstack/commerce-analytics-api/internal/service"
)

//go:generate mockery --name ExportService --output ../mocks
type ExportService interface {
	Schedule(ctx context.Context, req dto.CreateExportRequest) (*dto.ExportJobResponse, error)
	Rows(ctx context.Context, resource, startStr, endStr string) ([]string, [][]string, error)
	GetByID(ctx context.Context, id string) (*dto.ExportJobResponse, error)
	List(ctx context.Context) ([]dto.ExportJobResponse, error)
}

type ExportHandler struct {
	*BaseHandler
	service ExportService
	metrics *metrics.APIMetrics
}

func NewExportHandler(service ExportService, m *metrics.APIMetrics) *ExportHandler {
	return &ExportHandler{service: service, metrics: m}
}

// CreateExport godoc
// @Summary Schedule export
// @Description Schedule an asynchronous export of orders, products or customers to CSV or XLSX
// @Tags exports
// @Accept json
// @Produce json
// @Param body body dto.CreateExportRequest true "Export request"
// @Success 202 {object} dto.ExportJobResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /exports [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	var req dto.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	job, err := h.service.Schedule(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidExportResource) ||
			errors.Is(err, service.ErrInvalidExportFormat) ||
			errors.Is(err, service.ErrInvalidExportWindow) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		h.RespondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ExportsScheduled.Inc()
	}

	c.JSON(http.StatusAccepted, job)
}

// DownloadExport godoc
// @Summary Download export
// @Description Stream a CSV export of orders, products or customers directly in the response
// @Tags exports
// @Produce text/csv
// @Param resource query string true "Resource to export" Enums(orders, products, customers)
// @Param start_time query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {string} string "CSV body"
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /exports/download [get]
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	resource := c.Query("resource")
	header, rows, err := h.service.Rows(h.RequestCtx(c), resource, c.Query("start_time"), c.Query("end_time"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidExportResource) || errors.Is(err, service.ErrInvalidExportWindow) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		h.RespondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", resource))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(header); err != nil {
		return
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
}

// GetExport godoc
// @Summary Get export job
// @Description Get an export job's status and artifact key
// @Tags exports
// @Produce json
// @Param id path string true "Export job ID"
// @Success 200 {object} dto.ExportJobResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /exports/{id} [get]
func (h *ExportHandler) GetExport(c *gin.Context) {
	job, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListExports godoc
// @Summary List export jobs
// @Description List the resolved tenant's export jobs, newest first
// @Tags exports
// @Produce json
// @Success 200 {array} dto.ExportJobResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /exports [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	jobs, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
