package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/mocks"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockPayment *mocks.PaymentRepository
	mockOrder   *mocks.OrderRepository
	service     *PaymentService
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPayment = new(mocks.PaymentRepository)
	s.mockOrder = new(mocks.OrderRepository)

	s.mockRepo.On("Payment").Return(s.mockPayment)
	s.mockRepo.On("Order").Return(s.mockOrder)

	s.service = NewPaymentService(s.mockRepo, logger.NewLogger("test"))
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func webhookFixture() dto.PaymentWebhookRequest {
	return dto.PaymentWebhookRequest{
		OrderID:           "order-1",
		Provider:          "stripe",
		ExternalPaymentID: "pi_123",
		Amount:            49.99,
		Currency:          "EUR",
		Status:            "completed",
		OccurredAt:        time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (s *PaymentServiceTestSuite) TestRecordWebhook_FirstEventCreates() {
	ctx := context.Background()
	req := webhookFixture()

	s.mockPayment.On("GetByExternalID", ctx, "pi_123").Return(nil, domain.ErrNotFound)
	s.mockPayment.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.Payment)
		s.Equal("order-1", p.OrderID)
		s.Equal(domain.PaymentCompleted, p.Status)
		s.Equal("EUR", p.Currency)
		s.NotNil(p.ProcessedAt)
	})
	s.mockOrder.On("UpdatePaymentStatus", ctx, "order-1", domain.PaymentStatusPaid).Return(nil)

	resp, err := s.service.RecordWebhook(ctx, req)

	s.NoError(err)
	s.Equal("order-1", resp.OrderID)
	s.mockPayment.AssertExpectations(s.T())
	s.mockOrder.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestRecordWebhook_ReplayUpdatesSameRecord() {
	// Replays of the same provider event key to the same payment row.
	ctx := context.Background()
	req := webhookFixture()

	existing := &domain.Payment{
		ID:                "pay-1",
		OrderID:           "order-1",
		Status:            domain.PaymentPending,
		ExternalPaymentID: "pi_123",
	}

	s.mockPayment.On("GetByExternalID", ctx, "pi_123").Return(existing, nil)
	s.mockPayment.On("Update", ctx, existing).Return(nil)
	s.mockOrder.On("UpdatePaymentStatus", ctx, "order-1", domain.PaymentStatusPaid).Return(nil)

	resp, err := s.service.RecordWebhook(ctx, req)

	s.NoError(err)
	s.Equal(domain.PaymentCompleted, existing.Status)
	s.Equal("pay-1", resp.ID)
	s.mockPayment.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestRecordWebhook_FailedEventMarksOrderFailed() {
	ctx := context.Background()
	req := webhookFixture()
	req.Status = "failed"
	req.FailureReason = "card declined"

	s.mockPayment.On("GetByExternalID", ctx, "pi_123").Return(nil, domain.ErrNotFound)
	s.mockPayment.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
	s.mockOrder.On("UpdatePaymentStatus", ctx, "order-1", domain.PaymentStatusFailed).Return(nil)

	resp, err := s.service.RecordWebhook(ctx, req)

	s.NoError(err)
	s.Equal("card declined", resp.FailureReason)
}

func (s *PaymentServiceTestSuite) TestRecordWebhook_UnknownStatusRejected() {
	ctx := context.Background()
	req := webhookFixture()
	req.Status = "definitely-not-a-status"

	resp, err := s.service.RecordWebhook(ctx, req)

	s.Error(err)
	s.Nil(resp)
	s.mockPayment.AssertNotCalled(s.T(), "GetByExternalID", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestRecordWebhook_OrderRollupFailureIsNotFatal() {
	// The payment record is the source of truth; a failed order rollup is
	// logged and retried on the next event.
	ctx := context.Background()
	req := webhookFixture()

	s.mockPayment.On("GetByExternalID", ctx, "pi_123").Return(nil, domain.ErrNotFound)
	s.mockPayment.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
	s.mockOrder.On("UpdatePaymentStatus", ctx, "order-1", domain.PaymentStatusPaid).Return(domain.ErrNotFound)

	resp, err := s.service.RecordWebhook(ctx, req)

	s.NoError(err)
	s.NotNil(resp)
}

func (s *PaymentServiceTestSuite) TestRecordWebhook_DefaultsCurrencyAndTimestamp() {
	ctx := context.Background()
	req := webhookFixture()
	req.Currency = ""
	req.OccurredAt = time.Time{}

	s.mockPayment.On("GetByExternalID", ctx, "pi_123").Return(nil, domain.ErrNotFound)
	s.mockPayment.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.Payment)
		s.Equal("USD", p.Currency)
		s.False(p.ProcessedAt.IsZero())
	})
	s.mockOrder.On("UpdatePaymentStatus", ctx, "order-1", domain.PaymentStatusPaid).Return(nil)

	_, err := s.service.RecordWebhook(ctx, req)

	s.NoError(err)
}
