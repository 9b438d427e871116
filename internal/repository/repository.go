package repository

import (
	"context"
	"time"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error)
	GetByDomain(ctx context.Context, domain string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	AdjustStock(ctx context.Context, productID string, change int, eventType domain.StockEventType, referenceID string) (*domain.StockEvent, error)
}

//go:generate mockery --name CustomerRepository --output ../mocks
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name OrderRepository --output ../mocks
type OrderRepository interface {
	// Create persists the order with its items, decrements product stock and
	// records sale stock events inside one transaction.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	SalesSummary(ctx context.Context, start, end time.Time) (*domain.SalesSummary, error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]domain.ProductSales, error)
}

//go:generate mockery --name PaymentRepository --output ../mocks
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
}

//go:generate mockery --name StockEventRepository --output ../mocks
type StockEventRepository interface {
	List(ctx context.Context, filter domain.StockEventFilter) ([]domain.StockEvent, error)
}

//go:generate mockery --name ExportJobRepository --output ../mocks
type ExportJobRepository interface {
	Create(ctx context.Context, job *domain.ExportJob) error
	GetByID(ctx context.Context, id string) (*domain.ExportJob, error)
	// GetForWorker loads a job by id and tenant id without a request scope;
	// workers re-establish scope from the queue message.
	GetForWorker(ctx context.Context, id, tenantID string) (*domain.ExportJob, error)
	Update(ctx context.Context, job *domain.ExportJob) error
	List(ctx context.Context) ([]domain.ExportJob, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	IndexProduct(ctx context.Context, product *domain.Product) error
	BulkIndexProducts(ctx context.Context, products []domain.Product) error
	DeleteProduct(ctx context.Context, tenantID, productID string) error
	SearchProducts(ctx context.Context, filter *domain.ProductFilter) ([]domain.Product, error)
	DeleteTenantIndex(ctx context.Context, tenantID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Product() ProductRepository
	Customer() CustomerRepository
	Order() OrderRepository
	Payment() PaymentRepository
	StockEvent() StockEventRepository
	ExportJob() ExportJobRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
