package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockSearch *mocks.SearchRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockSearch = new(mocks.SearchRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewTenantService(s.mockRepo, nil, 0, logger.NewLogger("test"))
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name:      "Acme Store",
		Domain:    "acme",
		Timezone:  "Europe/Berlin",
		Currency:  "EUR",
		RateLimit: 500,
	}

	created := &domain.Tenant{
		ID:        "tenant1",
		Name:      req.Name,
		Domain:    req.Domain,
		APIKey:    "generated-key",
		Timezone:  req.Timezone,
		Currency:  req.Currency,
		RateLimit: req.RateLimit,
		IsActive:  true,
	}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(created, nil)

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("tenant1", resp.ID)
	s.Equal("Acme Store", resp.Name)
	s.Equal("generated-key", resp.APIKey)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_DefaultsTimezoneAndCurrency() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{Name: "Acme", Domain: "acme"}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(&domain.Tenant{ID: "t1"}, nil).Run(func(args mock.Arguments) {
		tenant := args.Get(1).(*domain.Tenant)
		s.Equal("UTC", tenant.Timezone)
		s.Equal("USD", tenant.Currency)
		s.True(tenant.IsActive)
	})

	_, err := s.service.Create(ctx, req)

	s.NoError(err)
}

func (s *TenantServiceTestSuite) TestGetByID_Success() {
	ctx := context.Background()
	expected := &domain.Tenant{ID: "tenant1", Name: "Acme"}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(expected, nil)

	tenant, err := s.service.GetByID(ctx, "tenant1")

	s.NoError(err)
	s.Equal(expected, tenant)
}

func (s *TenantServiceTestSuite) TestGetByAPIKey_NotFound() {
	ctx := context.Background()

	s.mockTenant.On("GetByAPIKey", ctx, "bogus").Return(nil, domain.ErrNotFound)

	tenant, err := s.service.GetByAPIKey(ctx, "bogus")

	s.Nil(tenant)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *TenantServiceTestSuite) TestUpdate_PartialFields() {
	ctx := context.Background()
	existing := &domain.Tenant{
		ID:        "tenant1",
		Name:      "Acme",
		Domain:    "acme",
		Timezone:  "UTC",
		Currency:  "USD",
		RateLimit: 100,
	}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(existing, nil)
	s.mockTenant.On("Update", ctx, existing).Return(nil)

	resp, err := s.service.Update(ctx, "tenant1", dto.UpdateTenantRequest{Currency: "EUR"})

	s.NoError(err)
	s.Equal("EUR", resp.Currency)
	// Untouched fields keep their values
	s.Equal("Acme", resp.Name)
	s.Equal("UTC", resp.Timezone)
	s.Equal(100, resp.RateLimit)
}

func (s *TenantServiceTestSuite) TestDeactivate_DropsSearchIndex() {
	ctx := context.Background()
	existing := &domain.Tenant{ID: "tenant1", Domain: "acme", APIKey: "key"}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(existing, nil)
	s.mockTenant.On("Deactivate", ctx, "tenant1").Return(nil)
	s.mockSearch.On("DeleteTenantIndex", ctx, "tenant1").Return(nil)

	err := s.service.Deactivate(ctx, "tenant1")

	s.NoError(err)
	s.mockSearch.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestDeactivate_IndexDropFailureIsNotFatal() {
	ctx := context.Background()
	existing := &domain.Tenant{ID: "tenant1"}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(existing, nil)
	s.mockTenant.On("Deactivate", ctx, "tenant1").Return(nil)
	s.mockSearch.On("DeleteTenantIndex", ctx, "tenant1").Return(domain.ErrNotFound)

	err := s.service.Deactivate(ctx, "tenant1")

	s.NoError(err)
}

func (s *TenantServiceTestSuite) TestList_Success() {
	ctx := context.Background()
	tenants := []domain.Tenant{{ID: "t1"}, {ID: "t2"}}

	s.mockTenant.On("List", ctx).Return(tenants, nil)

	resp, err := s.service.List(ctx)

	s.NoError(err)
	s.Len(resp, 2)
}
