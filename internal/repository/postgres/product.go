package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
)

type ProductRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProductRepository(writerDB, readerDB *gorm.DB) *ProductRepository {
	return &ProductRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	tenantID, err := stampTenant(ctx, product.TenantID)
	if err != nil {
		return err
	}
	product.TenantID = tenantID

	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := db.First(&product, "sku = ?", sku).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.SKU != "" {
		db = db.Where("sku = ?", filter.SKU)
	}
	if filter.MinPrice > 0 {
		db = db.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		db = db.Where("price <= ?", filter.MaxPrice)
	}
	if filter.LowStock {
		db = db.Where("stock_quantity <= min_stock_level")
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var products []domain.Product
	if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update re-reads the target under the tenant filter inside the transaction
// before writing, so a cross-tenant id surfaces as ErrNotFound. The tenant
// reference itself is never updated.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Product
		if err := tx.First(&existing, "id = ? AND tenant_id = ?", product.ID, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		product.TenantID = existing.TenantID
		product.CreatedAt = existing.CreatedAt
		product.UpdatedAt = time.Now()
		return tx.Save(product).Error
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Product
		if err := tx.First(&existing, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
			return translateNotFound(err)
		}
		return tx.Delete(&existing).Error
	})
}

func (r *ProductRepository) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := db.
		Where("stock_quantity <= min_stock_level AND is_active = true").
		Order("stock_quantity").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// AdjustStock applies a stock movement and records the matching stock event
// in one transaction.
func (r *ProductRepository) AdjustStock(ctx context.Context, productID string, change int, eventType domain.StockEventType, referenceID string) (*domain.StockEvent, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	var event *domain.StockEvent
	err = r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product domain.Product
		if err := tx.First(&product, "id = ? AND tenant_id = ?", productID, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		newQuantity := product.StockQuantity + change
		if newQuantity < 0 {
			return fmt.Errorf("%w: product %s has %d, change %d",
				domain.ErrInsufficientStock, product.SKU, product.StockQuantity, change)
		}

		if err := tx.Model(&product).Update("stock_quantity", newQuantity).Error; err != nil {
			return err
		}

		event = &domain.StockEvent{
			ID:             uuid.New().String(),
			TenantID:       product.TenantID,
			ProductID:      product.ID,
			EventType:      eventType,
			QuantityChange: change,
			QuantityAfter:  newQuantity,
			ReferenceID:    referenceID,
		}
		return tx.Create(event).Error
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}
