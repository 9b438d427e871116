package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
)

type CustomerRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCustomerRepository(writerDB, readerDB *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	tenantID, err := stampTenant(ctx, customer.TenantID)
	if err != nil {
		return err
	}
	customer.TenantID = tenantID

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &customer, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.Email != "" {
		db = db.Where("email = ?", filter.Email)
	}
	if filter.Country != "" {
		db = db.Where("country = ?", filter.Country)
	}
	if filter.VIPOnly {
		db = db.Where("is_vip = true")
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var customers []domain.Customer
	if err := db.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Customer
		if err := tx.First(&existing, "id = ? AND tenant_id = ?", customer.ID, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		customer.TenantID = existing.TenantID
		customer.CreatedAt = existing.CreatedAt
		customer.UpdatedAt = time.Now()
		return tx.Save(customer).Error
	})
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Customer
		if err := tx.First(&existing, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
			return translateNotFound(err)
		}
		return tx.Delete(&existing).Error
	})
}
