package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockRepo        *mocks.Repository
	mockOrder       *mocks.OrderRepository
	mockBroadcaster *mocks.OrderBroadcaster
	service         *OrderService
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockOrder = new(mocks.OrderRepository)
	s.mockBroadcaster = new(mocks.OrderBroadcaster)

	s.mockRepo.On("Order").Return(s.mockOrder)

	s.service = NewOrderService(s.mockRepo, logger.NewLogger("test"))
	s.service.SetOrderBroadcaster(s.mockBroadcaster)
}

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) TestCreate_ComputesTotalsAndBroadcasts() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10},
			{ProductID: "p2", Quantity: 1, UnitPrice: 5},
		},
		TaxAmount:       2,
		ShippingAmount:  3,
		DiscountAmount:  1,
		PaymentMethod:   "credit_card",
		ShippingAddress: json.RawMessage(`{"city":"Portland"}`),
	}

	s.mockOrder.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		order := args.Get(1).(*domain.Order)
		s.Equal(25.0, order.Subtotal)
		s.Equal(29.0, order.TotalAmount)
		s.Len(order.Items, 2)
	})
	s.mockBroadcaster.On("BroadcastOrder", mock.AnythingOfType("*dto.OrderResponse")).Return()

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("cust-1", resp.CustomerID)
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestCreate_InsufficientStockSurfaces() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 99, UnitPrice: 10}},
	}

	s.mockOrder.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(domain.ErrInsufficientStock)

	resp, err := s.service.Create(ctx, req)

	s.Nil(resp)
	s.ErrorIs(err, domain.ErrInsufficientStock)
	s.mockBroadcaster.AssertNotCalled(s.T(), "BroadcastOrder", mock.Anything)
}

func (s *OrderServiceTestSuite) TestCreate_WithoutBroadcaster() {
	ctx := context.Background()
	s.service.SetOrderBroadcaster(nil)
	req := dto.CreateOrderRequest{
		CustomerID: "cust-1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
	}

	s.mockOrder.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.NotNil(resp)
}

func (s *OrderServiceTestSuite) TestUpdateStatus_Broadcasts() {
	ctx := context.Background()
	order := &domain.Order{ID: "o1", Status: domain.OrderStatusConfirmed, CustomerID: "cust-1"}

	s.mockOrder.On("UpdateStatus", ctx, "o1", domain.OrderStatusConfirmed).Return(order, nil)
	s.mockBroadcaster.On("BroadcastOrder", mock.AnythingOfType("*dto.OrderResponse")).Return()

	resp, err := s.service.UpdateStatus(ctx, "o1", domain.OrderStatusConfirmed)

	s.NoError(err)
	s.Equal(domain.OrderStatusConfirmed, domain.OrderStatus(resp.Status))
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *OrderServiceTestSuite) TestUpdateStatus_InvalidTransition() {
	ctx := context.Background()

	s.mockOrder.On("UpdateStatus", ctx, "o1", domain.OrderStatusPending).Return(nil, domain.ErrInvalidTransition)

	resp, err := s.service.UpdateStatus(ctx, "o1", domain.OrderStatusPending)

	s.Nil(resp)
	s.ErrorIs(err, domain.ErrInvalidTransition)
	s.mockBroadcaster.AssertNotCalled(s.T(), "BroadcastOrder", mock.Anything)
}

func (s *OrderServiceTestSuite) TestList_DefaultsPagination() {
	ctx := context.Background()
	filter := &domain.OrderFilter{}

	s.mockOrder.On("List", ctx, mock.AnythingOfType("domain.OrderFilter")).Return([]domain.Order{}, nil)

	_, err := s.service.List(ctx, filter)

	s.NoError(err)
	s.Equal(1, filter.Page)
	s.Equal(10, filter.PageSize)
}
