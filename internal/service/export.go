package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
	"github.com/shopstack/commerce-analytics-api/internal/service/storage"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
	"github.com/shopstack/commerce-analytics-api/pkg/utils"
)

// ExportService schedules asynchronous exports and runs them on the worker
// side. Scheduling happens under the request's tenant scope; the worker
// re-establishes scope from the tenant id carried on the queue message.
type ExportService struct {
	repo   repository.Repository
	sqsSvc SQSService
	store  *storage.ObjectStore
	logger *logger.Logger
}

func NewExportService(repo repository.Repository, sqsSvc SQSService, store *storage.ObjectStore, logger *logger.Logger) *ExportService {
	return &ExportService{
		repo:   repo,
		sqsSvc: sqsSvc,
		store:  store,
		logger: logger,
	}
}

func (s *ExportService) Schedule(ctx context.Context, req dto.CreateExportRequest) (*dto.ExportJobResponse, error) {
	resource := domain.ExportResource(req.Resource)
	switch resource {
	case domain.ExportResourceOrders, domain.ExportResourceProducts, domain.ExportResourceCustomers:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportResource, req.Resource)
	}

	format := domain.ExportFormat(req.Format)
	if format == "" {
		format = domain.ExportFormatCSV
	}
	switch format {
	case domain.ExportFormatCSV, domain.ExportFormatXLSX:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportFormat, req.Format)
	}

	start, end, err := utils.Window(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExportWindow, err)
	}

	job := &domain.ExportJob{
		Resource:  resource,
		Format:    format,
		Status:    domain.ExportStatusPending,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.repo.ExportJob().Create(ctx, job); err != nil {
		return nil, err
	}

	if err := s.sqsSvc.SendExportMessage(ctx, job.TenantID, job.ID); err != nil {
		return nil, fmt.Errorf("failed to enqueue export job %s: %w", job.ID, err)
	}

	return dto.FromExportJob(job), nil
}

// Rows resolves the header and data rows for a synchronous export. The
// caller renders them; small windows are served inline without a job.
func (s *ExportService) Rows(ctx context.Context, resource, startStr, endStr string) ([]string, [][]string, error) {
	start, end, err := utils.Window(startStr, endStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidExportWindow, err)
	}

	switch domain.ExportResource(resource) {
	case domain.ExportResourceOrders:
		return s.orderRows(ctx, start, end)
	case domain.ExportResourceProducts:
		return s.productRows(ctx)
	case domain.ExportResourceCustomers:
		return s.customerRows(ctx)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidExportResource, resource)
	}
}

func (s *ExportService) GetByID(ctx context.Context, id string) (*dto.ExportJobResponse, error) {
	job, err := s.repo.ExportJob().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromExportJob(job), nil
}

func (s *ExportService) List(ctx context.Context) ([]dto.ExportJobResponse, error) {
	jobs, err := s.repo.ExportJob().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromExportJobs(jobs), nil
}

// RunJob executes one export job on the worker side. The tenant id comes
// from the queue message; the job is loaded under that tenant's filter and
// all data reads run under a freshly established scope for the same tenant.
func (s *ExportService) RunJob(ctx context.Context, tenantID, jobID string) error {
	job, err := s.repo.ExportJob().GetForWorker(ctx, jobID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load export job %s for tenant %s: %w", jobID, tenantID, err)
	}

	if job.Status != domain.ExportStatusPending {
		s.logger.Infof("Export job %s already in status %s, skipping", job.ID, job.Status)
		return nil
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	scopedCtx := tenantscope.WithTenant(ctx, tenant)

	job.Status = domain.ExportStatusProcessing
	if err := s.repo.ExportJob().Update(ctx, job); err != nil {
		return err
	}

	body, contentType, extension, rowCount, err := s.render(scopedCtx, job)
	if err != nil {
		job.Status = domain.ExportStatusFailed
		job.Error = err.Error()
		if updateErr := s.repo.ExportJob().Update(ctx, job); updateErr != nil {
			s.logger.Errorf("Failed to mark export job %s failed: %v", job.ID, updateErr)
		}
		return fmt.Errorf("failed to render export job %s: %w", job.ID, err)
	}

	key := storage.ExportKey(tenantID, job.ID, string(job.Resource), extension)
	if err := s.store.Upload(ctx, key, body, contentType, tenantID); err != nil {
		job.Status = domain.ExportStatusFailed
		job.Error = err.Error()
		if updateErr := s.repo.ExportJob().Update(ctx, job); updateErr != nil {
			s.logger.Errorf("Failed to mark export job %s failed: %v", job.ID, updateErr)
		}
		return err
	}

	now := time.Now()
	job.Status = domain.ExportStatusCompleted
	job.RowCount = rowCount
	job.ObjectKey = key
	job.Error = ""
	job.CompletedAt = &now
	if err := s.repo.ExportJob().Update(ctx, job); err != nil {
		return err
	}

	s.logger.Infof("Export job %s completed: %d rows to s3 key %s", job.ID, rowCount, key)
	return nil
}

func (s *ExportService) render(ctx context.Context, job *domain.ExportJob) (body []byte, contentType, extension string, rowCount int64, err error) {
	var header []string
	var rows [][]string

	switch job.Resource {
	case domain.ExportResourceOrders:
		header, rows, err = s.orderRows(ctx, job.StartTime, job.EndTime)
	case domain.ExportResourceProducts:
		header, rows, err = s.productRows(ctx)
	case domain.ExportResourceCustomers:
		header, rows, err = s.customerRows(ctx)
	default:
		err = fmt.Errorf("%w: %q", ErrInvalidExportResource, job.Resource)
	}
	if err != nil {
		return nil, "", "", 0, err
	}

	switch job.Format {
	case domain.ExportFormatXLSX:
		body, err = renderXLSX(string(job.Resource), header, rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		extension = "xlsx"
	default:
		body, err = renderCSV(header, rows)
		contentType = "text/csv"
		extension = "csv"
	}
	if err != nil {
		return nil, "", "", 0, err
	}

	return body, contentType, extension, int64(len(rows)), nil
}

func (s *ExportService) orderRows(ctx context.Context, start, end time.Time) ([]string, [][]string, error) {
	orders, err := s.repo.Order().List(ctx, domain.OrderFilter{
		StartTime: start,
		EndTime:   end,
		Limit:     exportRowLimit,
	})
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = []string{
			o.OrderNumber,
			string(o.Status),
			o.CustomerID,
			formatAmount(o.Subtotal),
			formatAmount(o.TaxAmount),
			formatAmount(o.ShippingAmount),
			formatAmount(o.DiscountAmount),
			formatAmount(o.TotalAmount),
			string(o.PaymentStatus),
			fmt.Sprintf("%d", len(o.Items)),
			o.CreatedAt.Format(time.RFC3339),
		}
	}
	return orderExportHeader, rows, nil
}

func (s *ExportService) productRows(ctx context.Context) ([]string, [][]string, error) {
	products, err := s.repo.Product().List(ctx, domain.ProductFilter{Limit: exportRowLimit})
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			p.SKU,
			p.Name,
			p.Category,
			formatAmount(p.Price),
			formatAmount(p.CostPrice),
			fmt.Sprintf("%d", p.StockQuantity),
			fmt.Sprintf("%d", p.MinStockLevel),
			fmt.Sprintf("%t", p.IsActive),
			p.CreatedAt.Format(time.RFC3339),
		}
	}
	return productExportHeader, rows, nil
}

func (s *ExportService) customerRows(ctx context.Context) ([]string, [][]string, error) {
	customers, err := s.repo.Customer().List(ctx, domain.CustomerFilter{Limit: exportRowLimit})
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, len(customers))
	for i, c := range customers {
		rows[i] = []string{
			c.Email,
			c.FirstName,
			c.LastName,
			c.Phone,
			c.City,
			c.Country,
			fmt.Sprintf("%t", c.IsVIP),
			c.CreatedAt.Format(time.RFC3339),
		}
	}
	return customerExportHeader, rows, nil
}
