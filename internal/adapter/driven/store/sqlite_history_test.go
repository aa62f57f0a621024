package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costpilot/ai-cost-dashboard/internal/domain/entity"
)

func newTestHistory(t *testing.T) *SQLiteHistory {
	t.Helper()
	h, err := NewSQLiteHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func record(monthly float64, at time.Time) entity.EstimateRecord {
	return entity.EstimateRecord{
		ID:        uuid.NewString(),
		CreatedAt: at,
		Profile: entity.UsageProfile{
			TransactionsPerMonth: 100,
			InputTokens:          500,
			OutputTokens:         800,
			ModelTier:            entity.TierStandard,
		},
		InputTokens:  89_000,
		OutputTokens: 80_000,
		TotalMonthly: monthly,
		TotalAnnual:  monthly * 12,
	}
}

func TestSaveAndListEstimates(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, h.SaveEstimate(ctx, record(1.0, now.Add(-2*time.Hour))))
	require.NoError(t, h.SaveEstimate(ctx, record(2.0, now.Add(-1*time.Hour))))
	require.NoError(t, h.SaveEstimate(ctx, record(3.0, now)))

	records, err := h.ListEstimates(ctx, 2)
	require.NoError(t, err)

	// mais recentes primeiro
	require.Len(t, records, 2)
	assert.Equal(t, 3.0, records[0].TotalMonthly)
	assert.Equal(t, 2.0, records[1].TotalMonthly)

	// o perfil persiste integralmente via JSON
	assert.Equal(t, entity.TierStandard, records[0].Profile.ModelTier)
	assert.Equal(t, 500, records[0].Profile.InputTokens)
}

func TestListEstimatesEmpty(t *testing.T) {
	h := newTestHistory(t)

	records, err := h.ListEstimates(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListEstimatesDefaultLimit(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, h.SaveEstimate(ctx, record(float64(i), time.Now().Add(time.Duration(i)*time.Minute))))
	}

	records, err := h.ListEstimates(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 10)
}
