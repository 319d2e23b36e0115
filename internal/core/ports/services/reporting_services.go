package services

import (
	"context"
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// CashFlowSummary totals receipts and payments over a period, optionally
	// restricted to one treasury.
	CashFlowSummary(ctx context.Context, from, to time.Time, treasuryID *string) (*domain.CashFlowSummary, error)

	// ExpenseSummary totals payments per expense category over a period.
	ExpenseSummary(ctx context.Context, from, to time.Time) ([]domain.ExpenseSummaryRow, error)

	// TreasuryMovement lists the vouchers touching one treasury over a period.
	TreasuryMovement(ctx context.Context, treasuryID string, from, to time.Time) (*domain.TreasuryMovement, error)
}
