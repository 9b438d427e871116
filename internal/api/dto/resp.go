package dto

import (
	"encoding/json"
	"time"
)

type TenantResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Acme Store"`
	Domain    string    `json:"domain" example:"acme"`
	APIKey    string    `json:"api_key,omitempty" example:"9b2f8c1e-1f24-4fd4-a5b3-1c0a9a1ef003"`
	IsActive  bool      `json:"is_active" example:"true"`
	Timezone  string    `json:"timezone" example:"UTC"`
	Currency  string    `json:"currency" example:"USD"`
	RateLimit int       `json:"rate_limit" example:"1000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category,omitempty"`
	Price         float64         `json:"price"`
	CostPrice     float64         `json:"cost_price,omitempty"`
	ProfitMargin  float64         `json:"profit_margin"`
	StockQuantity int             `json:"stock_quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	IsActive      bool            `json:"is_active"`
	Tags          json.RawMessage `json:"tags,omitempty" swaggertype:"string"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CustomerResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	Country    string    `json:"country,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsVIP      bool      `json:"is_vip"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	TenantID        string              `json:"tenant_id"`
	CustomerID      string              `json:"customer_id"`
	Status          string              `json:"status"`
	Subtotal        float64             `json:"subtotal"`
	TaxAmount       float64             `json:"tax_amount"`
	ShippingAmount  float64             `json:"shipping_amount"`
	DiscountAmount  float64             `json:"discount_amount"`
	TotalAmount     float64             `json:"total_amount"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	ShippingAddress json.RawMessage     `json:"shipping_address,omitempty" swaggertype:"string"`
	BillingAddress  json.RawMessage     `json:"billing_address,omitempty" swaggertype:"string"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	ShippedAt       *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
}

type PaymentResponse struct {
	ID                    string          `json:"id"`
	TenantID              string          `json:"tenant_id"`
	OrderID               string          `json:"order_id"`
	Amount                float64         `json:"amount"`
	Currency              string          `json:"currency"`
	Status                string          `json:"status"`
	Provider              string          `json:"provider,omitempty"`
	ExternalPaymentID     string          `json:"external_payment_id,omitempty"`
	ExternalTransactionID string          `json:"external_transaction_id,omitempty"`
	PaymentData           json.RawMessage `json:"payment_data,omitempty" swaggertype:"string"`
	FailureReason         string          `json:"failure_reason,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	ProcessedAt           *time.Time      `json:"processed_at,omitempty"`
}

type StockEventResponse struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	ProductID      string    `json:"product_id"`
	EventType      string    `json:"event_type"`
	QuantityChange int       `json:"quantity_change"`
	QuantityAfter  int       `json:"quantity_after"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ExportJobResponse struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Resource    string     `json:"resource"`
	Format      string     `json:"format"`
	Status      string     `json:"status"`
	RowCount    int64      `json:"row_count"`
	ObjectKey   string     `json:"object_key,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type SalesSummaryResponse struct {
	TotalRevenue      float64            `json:"total_revenue"`
	OrderCount        int64              `json:"order_count"`
	AverageOrderValue float64            `json:"average_order_value"`
	UniqueCustomers   int64              `json:"unique_customers"`
	OrdersByStatus    map[string]int64   `json:"orders_by_status"`
	RevenueByStatus   map[string]float64 `json:"revenue_by_status"`
}

type ProductSalesResponse struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductSKU   string  `json:"product_sku"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}
