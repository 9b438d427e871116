package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
)

type OrderRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOrderRepository(writerDB, readerDB *gorm.DB) *OrderRepository {
	return &OrderRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func generateOrderNumber(orderID string) string {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	if len(timestamp) > 8 {
		timestamp = timestamp[len(timestamp)-8:]
	}
	return fmt.Sprintf("ORD-%s-%s", timestamp, strings.ToUpper(orderID[:8]))
}

// Create persists the order with its items, verifies the customer belongs to
// the same tenant, decrements product stock and records a sale stock event
// per item — all in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tenantID, err := stampTenant(ctx, order.TenantID)
	if err != nil {
		return err
	}
	order.TenantID = tenantID

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.OrderNumber == "" {
		order.OrderNumber = generateOrderNumber(order.ID)
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = domain.PaymentStatusPending
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer domain.Customer
		if err := tx.First(&customer, "id = ? AND tenant_id = ?", order.CustomerID, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		for i := range order.Items {
			item := &order.Items[i]
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.OrderID = order.ID

			var product domain.Product
			if err := tx.First(&product, "id = ? AND tenant_id = ?", item.ProductID, tenantID).Error; err != nil {
				return translateNotFound(err)
			}

			// Snapshot product identity at order time.
			if item.ProductName == "" {
				item.ProductName = product.Name
			}
			if item.ProductSKU == "" {
				item.ProductSKU = product.SKU
			}
			if item.UnitPrice == 0 {
				item.UnitPrice = product.Price
			}
			item.TotalPrice = float64(item.Quantity) * item.UnitPrice

			newQuantity := product.StockQuantity - item.Quantity
			if newQuantity < 0 {
				return fmt.Errorf("%w: product %s has %d, want %d",
					domain.ErrInsufficientStock, product.SKU, product.StockQuantity, item.Quantity)
			}
			if err := tx.Model(&product).Update("stock_quantity", newQuantity).Error; err != nil {
				return err
			}

			event := &domain.StockEvent{
				ID:             uuid.New().String(),
				TenantID:       tenantID,
				ProductID:      product.ID,
				EventType:      domain.StockEventSale,
				QuantityChange: -item.Quantity,
				QuantityAfter:  newQuantity,
				ReferenceID:    order.ID,
			}
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}

		return tx.Create(order).Error
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	var order domain.Order
	if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.CustomerID != "" {
		db = db.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		db = db.Where("payment_status = ?", filter.PaymentStatus)
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

	var orders []domain.Order
	if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus validates the transition against the order status machine
// after re-reading the order under the tenant filter.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	var order domain.Order
	err = r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		if !order.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, status)
		}

		updates := map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}
		now := time.Now()
		switch status {
		case domain.OrderStatusShipped:
			updates["shipped_at"] = now
			order.ShippedAt = &now
		case domain.OrderStatusDelivered:
			updates["delivered_at"] = now
			order.DeliveredAt = &now
		}

		if err := tx.Model(&domain.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		order.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.First(&order, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
			return translateNotFound(err)
		}

		return tx.Model(&order).Updates(map[string]interface{}{
			"payment_status": status,
			"updated_at":     time.Now(),
		}).Error
	})
}

// SalesSummary aggregates revenue, order counts and unique customers over a
// time window, grouped by status in a single pass.
func (r *OrderRepository) SalesSummary(ctx context.Context, start, end time.Time) (*domain.SalesSummary, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.SalesSummary{
		OrdersByStatus:  make(map[domain.OrderStatus]int64),
		RevenueByStatus: make(map[domain.OrderStatus]float64),
	}

	type statusRow struct {
		Status  domain.OrderStatus
		Count   int64
		Revenue float64
	}
	var rows []statusRow

	err = r.readerDB.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE tenant_id = ? AND created_at >= ? AND created_at < ?
		GROUP BY status`,
		tenantID, start, end).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders by status: %w", err)
	}

	for _, row := range rows {
		summary.OrdersByStatus[row.Status] = row.Count
		summary.RevenueByStatus[row.Status] = row.Revenue
		summary.OrderCount += row.Count
		if row.Status != domain.OrderStatusCancelled && row.Status != domain.OrderStatusRefunded {
			summary.TotalRevenue += row.Revenue
		}
	}
	if summary.OrderCount > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.OrderCount)
	}

	err = r.readerDB.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT customer_id)
		FROM orders
		WHERE tenant_id = ? AND created_at >= ? AND created_at < ?`,
		tenantID, start, end).Scan(&summary.UniqueCustomers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count unique customers: %w", err)
	}

	return summary, nil
}

func (r *OrderRepository) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]domain.ProductSales, error) {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	var results []domain.ProductSales
	err = r.readerDB.WithContext(ctx).Raw(`
		SELECT oi.product_id,
		       oi.product_name,
		       oi.product_sku,
		       SUM(oi.quantity)    AS quantity_sold,
		       SUM(oi.total_price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.tenant_id = ? AND o.created_at >= ? AND o.created_at < ?
		  AND o.status NOT IN ('cancelled', 'refunded')
		GROUP BY oi.product_id, oi.product_name, oi.product_sku
		ORDER BY revenue DESC
		LIMIT ?`,
		tenantID, start, end, limit).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}

	return results, nil
}
