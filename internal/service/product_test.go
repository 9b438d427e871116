package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
	"github.com/shopstack/commerce-analytics-api/internal/tenantscope"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProduct *mocks.ProductRepository
	mockSearch  *mocks.SearchRepository
	mockSQS     *mocks.SQSService
	service     *ProductService
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProduct = new(mocks.ProductRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("Product").Return(s.mockProduct)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewProductService(s.mockRepo, s.mockSQS, logger.NewLogger("test"))
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (s *ProductServiceTestSuite) scopedCtx(tenantID string) context.Context {
	return tenantscope.WithTenant(context.Background(), &domain.Tenant{ID: tenantID, IsActive: true})
}

func (s *ProductServiceTestSuite) TestCreate_StoresAndEnqueuesIndex() {
	ctx := s.scopedCtx("t1")
	req := dto.CreateProductRequest{
		Name:          "Wireless Mouse",
		SKU:           "WM-1001",
		Price:         29.99,
		StockQuantity: 100,
	}

	s.mockProduct.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)
	s.mockSQS.On("SendProductIndexMessage", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("Wireless Mouse", resp.Name)
	s.Equal("WM-1001", resp.SKU)
	s.True(resp.IsActive)
	s.mockProduct.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreate_IndexEnqueueFailureIsNotFatal() {
	// A queue outage must not lose the write; search catches up later.
	ctx := s.scopedCtx("t1")
	req := dto.CreateProductRequest{Name: "Mouse", SKU: "WM-1", Price: 10}

	s.mockProduct.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)
	s.mockSQS.On("SendProductIndexMessage", ctx, mock.AnythingOfType("*domain.Product")).Return(errors.New("queue down"))

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.NotNil(resp)
}

func (s *ProductServiceTestSuite) TestList_QueryRoutesToSearch() {
	ctx := s.scopedCtx("t1")
	filter := &domain.ProductFilter{Query: "mouse"}

	results := []domain.Product{{ID: "p1", TenantID: "t1", Name: "Wireless Mouse"}}
	s.mockSearch.On("SearchProducts", ctx, filter).Return(results, nil)

	resp, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Len(resp, 1)
	s.Equal("p1", resp[0].ID)
	s.mockProduct.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestList_NoQueryStaysOnPostgres() {
	ctx := s.scopedCtx("t1")
	filter := &domain.ProductFilter{Category: "electronics"}

	results := []domain.Product{{ID: "p1"}, {ID: "p2"}}
	s.mockProduct.On("List", ctx, mock.AnythingOfType("domain.ProductFilter")).Return(results, nil)

	resp, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Len(resp, 2)
	s.mockSearch.AssertNotCalled(s.T(), "SearchProducts", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestList_DefaultsPagination() {
	ctx := s.scopedCtx("t1")
	filter := &domain.ProductFilter{}

	s.mockProduct.On("List", ctx, mock.AnythingOfType("domain.ProductFilter")).Return([]domain.Product{}, nil)

	_, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Equal(1, filter.Page)
	s.Equal(10, filter.PageSize)
	s.Equal(10, filter.Limit)
	s.Equal(0, filter.Offset)
}

func (s *ProductServiceTestSuite) TestDelete_EnqueuesSearchDelete() {
	ctx := s.scopedCtx("t1")

	s.mockProduct.On("Delete", ctx, "p1").Return(nil)
	s.mockSQS.On("SendProductDeleteMessage", ctx, "t1", "p1").Return(nil)

	err := s.service.Delete(ctx, "p1")

	s.NoError(err)
	s.mockSQS.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestDelete_UnscopedContextFails() {
	err := s.service.Delete(context.Background(), "p1")

	s.Error(err)
	s.mockProduct.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestGetByID_NotFound() {
	ctx := s.scopedCtx("t1")
	s.mockProduct.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

	resp, err := s.service.GetByID(ctx, "ghost")

	s.Nil(resp)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ProductServiceTestSuite) TestReindex_EnqueuesBulkIndex() {
	ctx := s.scopedCtx("t1")
	products := []domain.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	s.mockProduct.On("List", ctx, domain.ProductFilter{Limit: 10000}).Return(products, nil)
	s.mockSQS.On("SendBulkIndexMessage", ctx, products).Return(nil)

	count, err := s.service.Reindex(ctx)

	s.NoError(err)
	s.Equal(3, count)
}

func (s *ProductServiceTestSuite) TestReindex_EmptyTenantSkipsQueue() {
	ctx := s.scopedCtx("t1")

	s.mockProduct.On("List", ctx, domain.ProductFilter{Limit: 10000}).Return([]domain.Product{}, nil)

	count, err := s.service.Reindex(ctx)

	s.NoError(err)
	s.Equal(0, count)
	s.mockSQS.AssertNotCalled(s.T(), "SendBulkIndexMessage", mock.Anything, mock.Anything)
}
