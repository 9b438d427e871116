package service

import (
	"context"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
)

type CustomerService struct {
	repo repository.Repository
}

func NewCustomerService(repo repository.Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := req.ToCustomer()
	if err := s.repo.Customer().Create(ctx, customer); err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := s.repo.Customer().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) List(ctx context.Context, filter *domain.CustomerFilter) ([]dto.CustomerResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	customers, err := s.repo.Customer().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(customers), nil
}

func (s *CustomerService) Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.repo.Customer().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Email = req.Email
	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Phone = req.Phone
	customer.City = req.City
	customer.State = req.State
	customer.PostalCode = req.PostalCode
	customer.Country = req.Country
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	if req.IsVIP != nil {
		customer.IsVIP = *req.IsVIP
	}

	if err := s.repo.Customer().Update(ctx, customer); err != nil {
		return nil, err
	}
	return dto.FromCustomer(customer), nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Customer().Delete(ctx, id)
}
