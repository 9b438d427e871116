package service

import (
	"context"
	"time"

	"github.com/shopstack/commerce-analytics-api/internal/api/dto"
	"github.com/shopstack/commerce-analytics-api/internal/domain"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
)

// AnalyticsService serves aggregated reporting over the resolved tenant's
// orders and stock events. Reads go to the reader database.
type AnalyticsService struct {
	repo repository.Repository
}

func NewAnalyticsService(repo repository.Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) SalesSummary(ctx context.Context, start, end time.Time) (*dto.SalesSummaryResponse, error) {
	summary, err := s.repo.Order().SalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return dto.FromSalesSummary(summary), nil
}

func (s *AnalyticsService) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]dto.ProductSalesResponse, error) {
	if limit < 1 {
		limit = 10
	}
	sales, err := s.repo.Order().TopProducts(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	return dto.FromProductSales(sales), nil
}

func (s *AnalyticsService) ListStockEvents(ctx context.Context, filter *domain.StockEventFilter) ([]dto.StockEventResponse, error) {
	events, err := s.repo.StockEvent().List(ctx, *filter)
	if err != nil {
		return nil, err
	}
	return dto.FromStockEvents(events), nil
}

// AdjustStock applies a manual inventory movement and returns the recorded
// event.
func (s *AnalyticsService) AdjustStock(ctx context.Context, req dto.StockAdjustmentRequest) (*dto.StockEventResponse, error) {
	event, err := s.repo.Product().AdjustStock(ctx, req.ProductID, req.Change,
		domain.StockEventType(req.EventType), req.ReferenceID)
	if err != nil {
		return nil, err
	}
	return dto.FromStockEvent(event), nil
}
