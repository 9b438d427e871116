package domain

import (
	"time"
)

type ExportResource string

const (
	ExportResourceOrders    ExportResource = "orders"
	ExportResourceProducts  ExportResource = "products"
	ExportResourceCustomers ExportResource = "customers"
)

type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

type ExportStatus string

const (
	ExportStatusPending    ExportStatus = "pending"
	ExportStatusProcessing ExportStatus = "processing"
	ExportStatusCompleted  ExportStatus = "completed"
	ExportStatusFailed     ExportStatus = "failed"
)

// ExportJob tracks an asynchronous export. The worker picks the job up from
// the queue, re-establishes tenant scope from TenantID and writes the
// artifact to S3 under ObjectKey.
type ExportJob struct {
	ID          string         `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID    string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Resource    ExportResource `gorm:"type:text;not null" json:"resource"`
	Format      ExportFormat   `gorm:"type:text;not null;default:'csv'" json:"format"`
	Status      ExportStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	StartTime   time.Time      `gorm:"type:timestamp with time zone" json:"start_time"`
	EndTime     time.Time      `gorm:"type:timestamp with time zone" json:"end_time"`
	RowCount    int64          `gorm:"not null;default:0" json:"row_count"`
	ObjectKey   string         `gorm:"type:text" json:"object_key"`
	Error       string         `gorm:"type:text" json:"error,omitempty"`
	CreatedAt   time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	CompletedAt *time.Time     `gorm:"type:timestamp with time zone" json:"completed_at,omitempty"`
	Tenant      *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
}

func (ExportJob) TableName() string {
	return "export_jobs"
}
