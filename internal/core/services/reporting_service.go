package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/middleware"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	treasuryRepo  portsrepo.TreasuryRepositoryFacade
}

// NewReportingService creates a new reporting service over the voucher ledger.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, treasuryRepo portsrepo.TreasuryRepositoryFacade) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo, treasuryRepo: treasuryRepo}
}

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}
	return nil
}

func (s *reportingService) CashFlowSummary(ctx context.Context, from, to time.Time, treasuryID *string) (*domain.CashFlowSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if treasuryID != nil {
		if _, err := s.treasuryRepo.FindTreasuryByID(ctx, *treasuryID); err != nil {
			return nil, err
		}
	}

	summary, err := s.reportingRepo.GetCashFlowSummary(ctx, from, to, treasuryID)
	if err != nil {
		logger.Error("Failed to compute cash flow summary", slog.String("error", err.Error()))
		return nil, err
	}
	return summary, nil
}

func (s *reportingService) ExpenseSummary(ctx context.Context, from, to time.Time) ([]domain.ExpenseSummaryRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetExpenseSummary(ctx, from, to)
	if err != nil {
		logger.Error("Failed to compute expense summary", slog.String("error", err.Error()))
		return nil, err
	}
	if rows == nil {
		return []domain.ExpenseSummaryRow{}, nil
	}
	return rows, nil
}

func (s *reportingService) TreasuryMovement(ctx context.Context, treasuryID string, from, to time.Time) (*domain.TreasuryMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.treasuryRepo.FindTreasuryByID(ctx, treasuryID); err != nil {
		return nil, err
	}

	movement, err := s.reportingRepo.GetTreasuryMovement(ctx, treasuryID, from, to)
	if err != nil {
		logger.Error("Failed to compute treasury movement", slog.String("error", err.Error()), slog.String("treasury_id", treasuryID))
		return nil, err
	}
	return movement, nil
}
