package domain

import (
	"time"
)

type Customer struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_customers_tenant_email" json:"tenant_id"`
	Email      string    `gorm:"type:text;not null;uniqueIndex:idx_customers_tenant_email" json:"email"`
	FirstName  string    `gorm:"type:text;not null" json:"first_name"`
	LastName   string    `gorm:"type:text;not null" json:"last_name"`
	Phone      string    `gorm:"type:text" json:"phone"`
	City       string    `gorm:"type:text" json:"city"`
	State      string    `gorm:"type:text" json:"state"`
	PostalCode string    `gorm:"type:text" json:"postal_code"`
	Country    string    `gorm:"type:text" json:"country"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	IsVIP      bool      `gorm:"column:is_vip;not null;default:false" json:"is_vip"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

type CustomerFilter struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Country  string `json:"country"`
	VIPOnly  bool   `json:"vip_only"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}
