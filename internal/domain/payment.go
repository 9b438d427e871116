package domain

import (
	"encoding/json"
	"time"
)

type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentCompleted PaymentState = "completed"
	PaymentFailed    PaymentState = "failed"
	PaymentRefunded  PaymentState = "refunded"
)

// Payment records a transaction reported by an external provider. The
// provider protocol lives entirely in the provider SDK; this is bookkeeping.
type Payment struct {
	ID                    string          `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID              string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	OrderID               string          `gorm:"type:uuid;not null;index" json:"order_id"`
	Amount                float64         `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency              string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Status                PaymentState    `gorm:"type:text;not null;default:'pending'" json:"status"`
	Provider              string          `gorm:"type:text" json:"provider"`
	ExternalPaymentID     string          `gorm:"type:text;index" json:"external_payment_id"`
	ExternalTransactionID string          `gorm:"type:text" json:"external_transaction_id"`
	PaymentData           json.RawMessage `gorm:"type:jsonb" json:"payment_data,omitempty"`
	FailureReason         string          `gorm:"type:text" json:"failure_reason"`
	CreatedAt             time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	ProcessedAt           *time.Time      `gorm:"type:timestamp with time zone" json:"processed_at,omitempty"`
	Tenant                *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
	Order                 *Order          `gorm:"foreignKey:OrderID" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentFilter struct {
	TenantID  string       `json:"tenant_id"`
	OrderID   string       `json:"order_id"`
	Status    PaymentState `json:"status"`
	Provider  string       `json:"provider"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	Page      int          `json:"page"`
	PageSize  int          `json:"page_size"`
	Limit     int          `json:"limit"`
	Offset    int          `json:"offset"`
}
