package domain

import (
	"time"
)

type StockEventType string

const (
	StockEventSale       StockEventType = "sale"
	StockEventReturn     StockEventType = "return"
	StockEventAdjustment StockEventType = "adjustment"
	StockEventRestock    StockEventType = "restock"
)

// StockEvent is an append-only inventory movement. QuantityAfter snapshots
// the product stock level after the movement was applied.
type StockEvent struct {
	ID             string         `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID       string         `gorm:"type:uuid;not null;index:idx_stock_events_tenant_created" json:"tenant_id"`
	ProductID      string         `gorm:"type:uuid;not null;index" json:"product_id"`
	EventType      StockEventType `gorm:"type:text;not null" json:"event_type"`
	QuantityChange int            `gorm:"not null" json:"quantity_change"`
	QuantityAfter  int            `gorm:"not null" json:"quantity_after"`
	ReferenceID    string         `gorm:"type:text" json:"reference_id"`
	CreatedAt      time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP;index:idx_stock_events_tenant_created" json:"created_at"`
	Tenant         *Tenant        `gorm:"foreignKey:TenantID" json:"-"`
	Product        *Product       `gorm:"foreignKey:ProductID" json:"-"`
}

func (StockEvent) TableName() string {
	return "stock_events"
}

type StockEventFilter struct {
	TenantID  string         `json:"tenant_id"`
	ProductID string         `json:"product_id"`
	EventType StockEventType `json:"event_type"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}

// SalesSummary aggregates order revenue over a time window.
type SalesSummary struct {
	TotalRevenue      float64                 `json:"total_revenue"`
	OrderCount        int64                   `json:"order_count"`
	AverageOrderValue float64                 `json:"average_order_value"`
	UniqueCustomers   int64                   `json:"unique_customers"`
	OrdersByStatus    map[OrderStatus]int64   `json:"orders_by_status"`
	RevenueByStatus   map[OrderStatus]float64 `json:"revenue_by_status"`
}

// ProductSales ranks a product by sold quantity and revenue.
type ProductSales struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductSKU   string  `gorm:"column:product_sku" json:"product_sku"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}
