package domain

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// orderTransitions lists the statuses an order may move to from each status.
// Terminal statuses have no entry.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusRefunded},
}

// CanTransitionTo reports whether the order status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID              string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderNumber     string          `gorm:"type:text;not null;uniqueIndex" json:"order_number"`
	TenantID        string          `gorm:"type:uuid;not null;index:idx_orders_tenant_status" json:"tenant_id"`
	CustomerID      string          `gorm:"type:uuid;not null;index" json:"customer_id"`
	Status          OrderStatus     `gorm:"type:text;not null;default:'pending';index:idx_orders_tenant_status" json:"status"`
	Subtotal        float64         `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TaxAmount       float64         `gorm:"type:numeric(10,2);not null;default:0" json:"tax_amount"`
	ShippingAmount  float64         `gorm:"type:numeric(10,2);not null;default:0" json:"shipping_amount"`
	DiscountAmount  float64         `gorm:"type:numeric(10,2);not null;default:0" json:"discount_amount"`
	TotalAmount     float64         `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaymentStatus   PaymentStatus   `gorm:"type:text;not null;default:'pending'" json:"payment_status"`
	PaymentMethod   string          `gorm:"type:text" json:"payment_method"`
	ShippingAddress json.RawMessage `gorm:"type:jsonb" json:"shipping_address,omitempty"`
	BillingAddress  json.RawMessage `gorm:"type:jsonb" json:"billing_address,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	ShippedAt       *time.Time      `gorm:"type:timestamp with time zone" json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `gorm:"type:timestamp with time zone" json:"delivered_at,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Tenant          *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots product name and SKU at order time so later product
// edits do not rewrite history.
type OrderItem struct {
	ID          string  `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID     string  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   string  `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string  `gorm:"type:text;not null" json:"product_name"`
	ProductSKU  string  `gorm:"column:product_sku;type:text;not null" json:"product_sku"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"type:numeric(12,2);not null" json:"total_price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type OrderFilter struct {
	TenantID      string        `json:"tenant_id"`
	CustomerID    string        `json:"customer_id"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Page          int           `json:"page"`
	PageSize      int           `json:"page_size"`
	Limit         int           `json:"limit"`
	Offset        int           `json:"offset"`
}
