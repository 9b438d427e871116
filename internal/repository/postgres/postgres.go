package postgres

import (
	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
)

type postgresRepository struct {
	writerDB       *gorm.DB
	readerDB       *gorm.DB
	tenantRepo     repository.TenantRepository
	productRepo    repository.ProductRepository
	customerRepo   repository.CustomerRepository
	orderRepo      repository.OrderRepository
	paymentRepo    repository.PaymentRepository
	stockEventRepo repository.StockEventRepository
	exportJobRepo  repository.ExportJobRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:       dbConnections.Writer,
		readerDB:       dbConnections.Reader,
		tenantRepo:     NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		productRepo:    NewProductRepository(dbConnections.Writer, dbConnections.Reader),
		customerRepo:   NewCustomerRepository(dbConnections.Writer, dbConnections.Reader),
		orderRepo:      NewOrderRepository(dbConnections.Writer, dbConnections.Reader),
		paymentRepo:    NewPaymentRepository(dbConnections.Writer, dbConnections.Reader),
		stockEventRepo: NewStockEventRepository(dbConnections.Reader),
		exportJobRepo:  NewExportJobRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Product() repository.ProductRepository {
	return r.productRepo
}

func (r *postgresRepository) Customer() repository.CustomerRepository {
	return r.customerRepo
}

func (r *postgresRepository) Order() repository.OrderRepository {
	return r.orderRepo
}

func (r *postgresRepository) Payment() repository.PaymentRepository {
	return r.paymentRepo
}

func (r *postgresRepository) StockEvent() repository.StockEventRepository {
	return r.stockEventRepo
}

func (r *postgresRepository) ExportJob() repository.ExportJobRepository {
	return r.exportJobRepo
}
