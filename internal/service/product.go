package service

import (
	"context"
	"fmt"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendProductIndexMessage(ctx context.Context, product *domain.Product) error
	SendBulkIndexMessage(ctx context.Context, products []domain.Product) error
	SendProductDeleteMessage(ctx context.Context, tenantID, productID string) error
	SendExportMessage(ctx context.Context, tenantID, exportJobID string) error
}

type ProductService struct {
	repo   repository.Repository
	sqsSvc SQSService
	logger *logger.Logger
}

func NewProductService(repo repository.Repository, sqsSvc SQSService, logger *logger.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		sqsSvc: sqsSvc,
		logger: logger,
	}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := req.ToProduct()

	// Store in PostgreSQL; the write path stamps or verifies the tenant.
	if err := s.repo.Product().Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	// Send message to SQS for asynchronous search indexing
	if err := s.sqsSvc.SendProductIndexMessage(ctx, product); err != nil {
		s.logger.Errorf("Failed to send index message for product %s: %v", product.ID, err)
	}

	return dto.FromProduct(product), nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.repo.Product().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := s.repo.Product().GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) List(ctx context.Context, filter *domain.ProductFilter) ([]dto.ProductResponse, error) {
	// Set default values for pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	// Convert page and page size to limit and offset
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	// Full text queries go to OpenSearch, everything else stays on Postgres
	if s.hasSearchCriteria(filter) {
		products, err := s.repo.Search().SearchProducts(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.FromProducts(products), nil
	}

	products, err := s.repo.Product().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(products), nil
}

func (s *ProductService) hasSearchCriteria(filter *domain.ProductFilter) bool {
	return filter.Query != ""
}

func (s *ProductService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.Product().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.SKU = req.SKU
	product.Category = req.Category
	product.Price = req.Price
	product.CostPrice = req.CostPrice
	product.MinStockLevel = req.MinStockLevel
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}

	if err := s.repo.Product().Update(ctx, product); err != nil {
		return nil, err
	}

	// Re-index asynchronously so search reflects the edit
	if err := s.sqsSvc.SendProductIndexMessage(ctx, product); err != nil {
		s.logger.Errorf("Failed to send index message for product %s: %v", product.ID, err)
	}

	return dto.FromProduct(product), nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	tenantID, err := tenantscope.TenantID(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.Product().Delete(ctx, id); err != nil {
		return err
	}

	if err := s.sqsSvc.SendProductDeleteMessage(ctx, tenantID, id); err != nil {
		s.logger.Errorf("Failed to send delete message for product %s: %v", id, err)
	}
	return nil
}

// ListLowStock returns products at or below their minimum stock level.
func (s *ProductService) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.Product().ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(products), nil
}

// Reindex pushes every product of the resolved tenant through the bulk
// index queue. Used after index rebuilds.
func (s *ProductService) Reindex(ctx context.Context) (int, error) {
	products, err := s.repo.Product().List(ctx, domain.ProductFilter{Limit: 10000})
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}

	if err := s.sqsSvc.SendBulkIndexMessage(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to enqueue bulk index: %w", err)
	}
	return len(products), nil
}
