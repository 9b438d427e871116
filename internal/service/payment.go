package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

// PaymentService keeps payment records in sync with provider webhook events.
// The provider wire protocol and signature verification live in the provider
// SDK; this layer only does bookkeeping.
type PaymentService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewPaymentService(repo repository.Repository, logger *logger.Logger) *PaymentService {
	return &PaymentService{repo: repo, logger: logger}
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := s.repo.Payment().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromPayment(payment), nil
}

func (s *PaymentService) List(ctx context.Context, filter *domain.PaymentFilter) ([]dto.PaymentResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	payments, err := s.repo.Payment().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromPayments(payments), nil
}

// RecordWebhook upserts the payment record for a provider event, keyed by
// the provider's payment id, and rolls the payment status up onto the order.
// Replayed events land on the same record, so processing is idempotent.
func (s *PaymentService) RecordWebhook(ctx context.Context, req dto.PaymentWebhookRequest) (*dto.PaymentResponse, error) {
	status := domain.PaymentState(req.Status)
	switch status {
	case domain.PaymentPending, domain.PaymentCompleted, domain.PaymentFailed, domain.PaymentRefunded:
	default:
		return nil, fmt.Errorf("unknown payment status %q", req.Status)
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	payment, err := s.repo.Payment().GetByExternalID(ctx, req.ExternalPaymentID)
	switch {
	case err == nil:
		payment.Status = status
		payment.ExternalTransactionID = req.ExternalTransactionID
		payment.FailureReason = req.FailureReason
		if req.PaymentData != nil {
			payment.PaymentData = req.PaymentData
		}
		payment.ProcessedAt = &occurredAt
		if err := s.repo.Payment().Update(ctx, payment); err != nil {
			return nil, err
		}

	case errors.Is(err, domain.ErrNotFound):
		payment = &domain.Payment{
			OrderID:               req.OrderID,
			Amount:                req.Amount,
			Currency:              req.Currency,
			Status:                status,
			Provider:              req.Provider,
			ExternalPaymentID:     req.ExternalPaymentID,
			ExternalTransactionID: req.ExternalTransactionID,
			PaymentData:           req.PaymentData,
			FailureReason:         req.FailureReason,
			ProcessedAt:           &occurredAt,
		}
		if payment.Currency == "" {
			payment.Currency = "USD"
		}
		if err := s.repo.Payment().Create(ctx, payment); err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	if err := s.updateOrderPaymentStatus(ctx, payment.OrderID, status); err != nil {
		s.logger.Errorf("Failed to update payment status on order %s: %v", payment.OrderID, err)
	}

	return dto.FromPayment(payment), nil
}

func (s *PaymentService) updateOrderPaymentStatus(ctx context.Context, orderID string, status domain.PaymentState) error {
	var orderStatus domain.PaymentStatus
	switch status {
	case domain.PaymentCompleted:
		orderStatus = domain.PaymentStatusPaid
	case domain.PaymentFailed:
		orderStatus = domain.PaymentStatusFailed
	case domain.PaymentRefunded:
		orderStatus = domain.PaymentStatusRefunded
	default:
		orderStatus = domain.PaymentStatusPending
	}
	return s.repo.Order().UpdatePaymentStatus(ctx, orderID, orderStatus)
}
