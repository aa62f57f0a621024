package repository

import (
	"context"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
)

// HistoryRepository persiste estimativas já calculadas.
type HistoryRepository interface {
	SaveEstimate(ctx context.Context, record entity.EstimateRecord) error
	ListEstimates(ctx context.Context, limit int) ([]entity.EstimateRecord, error)
	Close() error
}
