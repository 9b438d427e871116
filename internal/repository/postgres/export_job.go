package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

type ExportJobRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewExportJobRepository(writerDB, readerDB *gorm.DB) *ExportJobRepository {
	return &ExportJobRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ExportJobRepository) Create(ctx context.Context, job *domain.ExportJob) error {
	tenantID, err := stampTenant(ctx, job.TenantID)
	if err != nil {
		return err
	}
	job.TenantID = tenantID

	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Status == "" {
		job.Status = domain.ExportStatusPending
	}

	return r.writerDB.WithContext(ctx).Create(job).Error
}

func (r *ExportJobRepository) GetByID(ctx context.Context, id string) (*domain.ExportJob, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var job domain.ExportJob
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &job, nil
}

// GetForWorker loads a job without a request scope. The worker supplies the
// tenant id from the queue message, so the tenant filter still applies.
func (r *ExportJobRepository) GetForWorker(ctx context.Context, id, tenantID string) (*domain.ExportJob, error) {
	var job domain.ExportJob
	if err := r.readerDB.WithContext(ctx).
		First(&job, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &job, nil
}

func (r *ExportJobRepository) Update(ctx context.Context, job *domain.ExportJob) error {
	job.UpdatedAt = time.Now()
	result := r.writerDB.WithContext(ctx).
		Model(&domain.ExportJob{}).
		Where("id = ? AND tenant_id = ?", job.ID, job.TenantID).
		Updates(map[string]interface{}{
			"status":       job.Status,
			"row_count":    job.RowCount,
			"object_key":   job.ObjectKey,
			"error":        job.Error,
			"updated_at":   job.UpdatedAt,
			"completed_at": job.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExportJobRepository) List(ctx context.Context) ([]domain.ExportJob, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var jobs []domain.ExportJob
	if err := db.Order("created_at DESC").Limit(100).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
