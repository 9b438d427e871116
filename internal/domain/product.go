package domain

import (
	"encoding/json"
	"time"
)

type Product struct {
	ID            string          `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID      string          `gorm:"type:uuid;not null;index:idx_products_tenant_active;uniqueIndex:idx_products_tenant_sku" json:"tenant_id"`
	Name          string          `gorm:"type:text;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	SKU           string          `gorm:"type:text;not null;uniqueIndex:idx_products_tenant_sku" json:"sku"`
	Category      string          `gorm:"type:text" json:"category"`
	Price         float64         `gorm:"type:numeric(10,2);not null" json:"price"`
	CostPrice     float64         `gorm:"type:numeric(10,2)" json:"cost_price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	MinStockLevel int             `gorm:"not null;default:0" json:"min_stock_level"`
	IsActive      bool            `gorm:"not null;default:true;index:idx_products_tenant_active" json:"is_active"`
	Tags          json.RawMessage `gorm:"type:jsonb" json:"tags,omitempty"`
	CreatedAt     time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant        *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProfitMargin returns the margin percentage, or 0 when cost is unknown.
func (p *Product) ProfitMargin() float64 {
	if p.CostPrice <= 0 || p.Price <= 0 {
		return 0
	}
	return (p.Price - p.CostPrice) / p.Price * 100
}

type ProductFilter struct {
	TenantID string `json:"tenant_id"`
	Query    string `json:"query"`
	Category string `json:"category"`
	SKU      string `json:"sku"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	LowStock bool   `json:"low_stock"`
	Active   *bool  `json:"active"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}
