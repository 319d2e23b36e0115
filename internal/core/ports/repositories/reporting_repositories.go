package repositories

import (
	"context"
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ReportingRepository defines aggregate read queries over vouchers and treasuries.
type ReportingRepository interface {
	// GetCashFlowSummary returns total receipts, total payments and the net over a
	// date range, optionally restricted to one treasury.
	GetCashFlowSummary(ctx context.Context, from, to time.Time, treasuryID *string) (*domain.CashFlowSummary, error)

	// GetExpenseSummary returns payment totals grouped by expense category over a date range.
	GetExpenseSummary(ctx context.Context, from, to time.Time) ([]domain.ExpenseSummaryRow, error)

	// GetTreasuryMovement returns the receipts and payments of one treasury over a date range.
	GetTreasuryMovement(ctx context.Context, treasuryID string, from, to time.Time) (*domain.TreasuryMovement, error)
}
