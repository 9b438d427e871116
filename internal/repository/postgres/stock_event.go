package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopstack/commerce-analytics-api/internal/domain"
)

// StockEventRepository reads the append-only stock movement log. Events are
// written by ProductRepository.AdjustStock and OrderRepository.Create inside
// their transactions.
type StockEventRepository struct {
	readerDB *gorm.DB
}

func NewStockEventRepository(readerDB *gorm.DB) *StockEventRepository {
	return &StockEventRepository{readerDB: readerDB}
}

func (r *StockEventRepository) List(ctx context.Context, filter domain.StockEventFilter) ([]domain.StockEvent, error) {
	db, err := tenantScoped(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if filter.ProductID != "" {
		db = db.Where("product_id = ?", filter.ProductID)
	}
	if filter.EventType != "" {
		db = db.Where("event_type = ?", filter.EventType)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	db = db.Limit(limit)
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var events []domain.StockEvent
	if err := db.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
