package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
)

type PaymentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentRepository(writerDB, readerDB *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	tenantID, err := stampTenant(ctx, payment.TenantID)
	if err != nil {
		return err
	}
	payment.TenantID = tenantID

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The order must resolve under the same tenant.
		var order domain.Order
		if err := tx.First(&order, "id = ? AND tenant_id = ?", payment.OrderID, tenantID).Error; err != nil {
			return translateNotFound(err)
		}
		return tx.Create(payment).Error
	})
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := db.First(&payment, "external_payment_id = ?", externalID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.OrderID != "" {
		db = db.Where("order_id = ?", filter.OrderID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Provider != "" {
		db = db.Where("provider = ?", filter.Provider)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var payments []domain.Payment
	if err := db.Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Payment
		if err := tx.First(&existing, "id = ? AND tenant_id = ?", payment.ID, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		payment.TenantID = existing.TenantID
		payment.CreatedAt = existing.CreatedAt
		payment.UpdatedAt = time.Now()
		return tx.Save(payment).Error
	})
}
