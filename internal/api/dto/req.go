package dto

import (
	"encoding/json"
	"time"
)

type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required" example:"Acme Store"`
	Domain    string `json:"domain" binding:"required" example:"acme"`
	Timezone  string `json:"timezone" example:"UTC"`
	Currency  string `json:"currency" example:"USD"`
	RateLimit int    `json:"rate_limit" example:"1000"`
}

type UpdateTenantRequest struct {
	Name      string `json:"name" example:"Acme Store"`
	Timezone  string `json:"timezone" example:"Europe/Berlin"`
	Currency  string `json:"currency" example:"EUR"`
	RateLimit int    `json:"rate_limit" example:"2000"`
}

type CreateProductRequest struct {
	TenantID      string          `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name          string          `json:"name" binding:"required" example:"Wireless Mouse"`
	Description   string          `json:"description" example:"Ergonomic 2.4GHz mouse"`
	SKU           string          `json:"sku" binding:"required" example:"WM-1001"`
	Category      string          `json:"category" example:"electronics"`
	Price         float64         `json:"price" binding:"required,gt=0" example:"29.99"`
	CostPrice     float64         `json:"cost_price" example:"12.50"`
	StockQuantity int             `json:"stock_quantity" example:"250"`
	MinStockLevel int             `json:"min_stock_level" example:"20"`
	Tags          json.RawMessage `json:"tags" swaggertype:"string" example:"['sale','new']"`
}

type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku" binding:"required"`
	Category      string          `json:"category"`
	Price         float64         `json:"price" binding:"required,gt=0"`
	CostPrice     float64         `json:"cost_price"`
	MinStockLevel int             `json:"min_stock_level"`
	IsActive      *bool           `json:"is_active"`
	Tags          json.RawMessage `json:"tags" swaggertype:"string"`
}

type CreateCustomerRequest struct {
	TenantID   string `json:"tenant_id"`
	Email      string `json:"email" binding:"required,email" example:"jane@example.com"`
	FirstName  string `json:"first_name" binding:"required" example:"Jane"`
	LastName   string `json:"last_name" binding:"required" example:"Doe"`
	Phone      string `json:"phone" example:"+1-555-0100"`
	City       string `json:"city" example:"Portland"`
	State      string `json:"state" example:"OR"`
	PostalCode string `json:"postal_code" example:"97201"`
	Country    string `json:"country" example:"US"`
	IsVIP      bool   `json:"is_vip"`
}

type UpdateCustomerRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsActive   *bool  `json:"is_active"`
	IsVIP      *bool  `json:"is_vip"`
}

type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	TenantID        string             `json:"tenant_id"`
	CustomerID      string             `json:"customer_id" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxAmount       float64            `json:"tax_amount"`
	ShippingAmount  float64            `json:"shipping_amount"`
	DiscountAmount  float64            `json:"discount_amount"`
	PaymentMethod   string             `json:"payment_method" example:"credit_card"`
	ShippingAddress json.RawMessage    `json:"shipping_address" swaggertype:"string"`
	BillingAddress  json.RawMessage    `json:"billing_address" swaggertype:"string"`
	Notes           string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
}

type StockAdjustmentRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	Change      int    `json:"change" binding:"required"`
	EventType   string `json:"event_type" binding:"required" example:"restock"`
	ReferenceID string `json:"reference_id"`
}

// PaymentWebhookRequest is the normalized shape of a provider payment event.
// Signature verification and provider wire formats stay in the provider SDK.
type PaymentWebhookRequest struct {
	OrderID               string          `json:"order_id" binding:"required"`
	Provider              string          `json:"provider" binding:"required" example:"stripe"`
	ExternalPaymentID     string          `json:"external_payment_id" binding:"required"`
	ExternalTransactionID string          `json:"external_transaction_id"`
	Amount                float64         `json:"amount" binding:"required,gt=0"`
	Currency              string          `json:"currency" example:"USD"`
	Status                string          `json:"status" binding:"required" example:"completed"`
	FailureReason         string          `json:"failure_reason"`
	PaymentData           json.RawMessage `json:"payment_data" swaggertype:"string"`
	OccurredAt            time.Time       `json:"occurred_at"`
}

type CreateExportRequest struct {
	Resource  string `json:"resource" binding:"required" example:"orders"`
	Format    string `json:"format" example:"csv"`
	StartTime string `json:"start_time" example:"2024-03-01"`
	EndTime   string `json:"end_time" example:"2024-03-31"`
}
