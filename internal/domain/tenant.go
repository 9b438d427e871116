package domain

import (
	"time"
)

// Tenant is an isolated customer organization. Tenants are never hard-deleted
// once scoped records reference them; deactivation flips IsActive instead.
type Tenant struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Domain    string    `gorm:"type:text;not null;uniqueIndex" json:"domain"`
	APIKey    string    `gorm:"type:text;not null;uniqueIndex" json:"api_key"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	Timezone  string    `gorm:"type:text;not null;default:'UTC'" json:"timezone"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	RateLimit int       `gorm:"not null;default:1000" json:"rate_limit"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
