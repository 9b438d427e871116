package service

import (
	"context"
	"fmt"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

//go:generate mockery --name OrderBroadcaster --output ../mocks
type OrderBroadcaster interface {
	BroadcastOrder(order *dto.OrderResponse)
}

type OrderService struct {
	repo        repository.Repository
	logger      *logger.Logger
	broadcaster OrderBroadcaster
}

func NewOrderService(repo repository.Repository, logger *logger.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
	}
}

// SetOrderBroadcaster sets the live order stream broadcaster
func (s *OrderService) SetOrderBroadcaster(broadcaster OrderBroadcaster) {
	s.broadcaster = broadcaster
}

func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	order := req.ToOrder()

	// The repository verifies customer and products under the tenant filter,
	// snapshots item identity, decrements stock and records sale events in
	// one transaction.
	if err := s.repo.Order().Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	resp := dto.FromOrder(order)

	// Broadcast to live stream clients if broadcaster is available
	if s.broadcaster != nil {
		s.broadcaster.BroadcastOrder(resp)
	}

	return resp, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.Order().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromOrder(order), nil
}

func (s *OrderService) List(ctx context.Context, filter *domain.OrderFilter) ([]dto.OrderResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	orders, err := s.repo.Order().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromOrders(orders), nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*dto.OrderResponse, error) {
	order, err := s.repo.Order().UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	resp := dto.FromOrder(order)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastOrder(resp)
	}
	return resp, nil
}
