package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/nileport/trading_erp/internal/middleware"
	"github.com/shopspring/decimal"
)

type voucherService struct {
	voucherRepo  portsrepo.VoucherRepositoryFacade
	treasuryRepo portsrepo.TreasuryRepositoryFacade
	baseCurrency string
}

// NewVoucherService creates a new voucher service. baseCurrency is the code
// applied when a request omits the currency.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, treasuryRepo portsrepo.TreasuryRepositoryFacade, baseCurrency string) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:  voucherRepo,
		treasuryRepo: treasuryRepo,
		baseCurrency: baseCurrency,
	}
}

func (s *voucherService) CreateVoucher(ctx context.Context, kind domain.VoucherKind, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: voucher amount must be positive", apperrors.ErrValidation)
	}

	// Treasury must exist before we open the write transaction so the caller
	// gets a 404 rather than a constraint error.
	if _, err := s.treasuryRepo.FindTreasuryByID(ctx, req.TreasuryID); err != nil {
		return nil, err
	}

	now := time.Now()
	currency := s.baseCurrency
	if req.Currency != nil && *req.Currency != "" {
		currency = *req.Currency
	}
	exchangeRate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil {
		if !req.ExchangeRate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		exchangeRate = *req.ExchangeRate
	}

	voucher := domain.Voucher{
		VoucherID:         uuid.NewString(),
		Kind:              kind,
		VoucherNumber:     req.VoucherNumber,
		Date:              req.Date,
		TreasuryID:        req.TreasuryID,
		Amount:            req.Amount,
		Currency:          currency,
		ExchangeRate:      exchangeRate,
		CostPrice:         req.CostPrice,
		Description:       req.Description,
		Notes:             req.Notes,
		ShipmentID:        req.ShipmentID,
		CustomerID:        req.CustomerID,
		SupplierID:        req.SupplierID,
		ExpenseCategoryID: req.ExpenseCategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The counterparty field matching the kind is the only one persisted.
	if kind == domain.Receipt {
		voucher.ReceivedFrom = req.ReceivedFrom
	} else {
		voucher.PaidTo = req.PaidTo
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher, voucher.LedgerDelta()); err != nil {
		logger.Error("Failed to save voucher in repository", slog.String("error", err.Error()), slog.String("voucher_id", voucher.VoucherID))
		return nil, err
	}

	logger.Info("Voucher created successfully", slog.String("voucher_id", voucher.VoucherID), slog.String("kind", string(kind)))
	return s.voucherRepo.FindVoucherByID(ctx, kind, voucher.VoucherID)
}

func (s *voucherService) GetVoucherByID(ctx context.Context, kind domain.VoucherKind, voucherID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, kind, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find voucher by ID in repository", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		}
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context, kind domain.VoucherKind, params dto.ListVouchersParams) ([]domain.Voucher, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	// Date params bind at midnight, so widen the upper bound to the end of its
	// day to keep the range inclusive.
	dateTo := params.DateTo
	if dateTo != nil {
		endOfDay := dateTo.AddDate(0, 0, 1).Add(-time.Nanosecond)
		dateTo = &endOfDay
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, kind, portsrepo.ListVouchersParams{
		TreasuryID: params.TreasuryID,
		DateFrom:   params.DateFrom,
		DateTo:     dateTo,
		Limit:      limit,
		NextToken:  params.NextToken,
	})
	if err != nil {
		logger.Error("Failed to list vouchers from repository", slog.String("error", err.Error()), slog.String("kind", string(kind)))
		return nil, nil, err
	}
	if vouchers == nil {
		vouchers = []domain.Voucher{}
	}
	return vouchers, nextToken, nil
}

// UpdateVoucher merges the request into the stored voucher, then reverses the
// old ledger effect and applies the new one in a single transaction. Moving the
// voucher to another treasury shifts the amount between both balances.
func (s *voucherService) UpdateVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.voucherRepo.FindVoucherByID(ctx, kind, voucherID)
	if err != nil {
		return nil, err
	}

	oldTreasuryID := existing.TreasuryID
	reverseDelta := existing.LedgerDelta().Neg()

	updated := *existing
	if req.VoucherNumber != nil {
		updated.VoucherNumber = *req.VoucherNumber
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.TreasuryID != nil {
		updated.TreasuryID = *req.TreasuryID
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: voucher amount must be positive", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.Currency != nil {
		updated.Currency = *req.Currency
	}
	if req.ExchangeRate != nil {
		if !req.ExchangeRate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		updated.ExchangeRate = *req.ExchangeRate
	}
	if req.CostPrice != nil {
		updated.CostPrice = req.CostPrice
	}
	if req.Description != nil {
		updated.Description = req.Description
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}
	if kind == domain.Receipt && req.ReceivedFrom != nil {
		updated.ReceivedFrom = req.ReceivedFrom
	}
	if kind == domain.Payment && req.PaidTo != nil {
		updated.PaidTo = req.PaidTo
	}
	if req.ShipmentID != nil {
		updated.ShipmentID = req.ShipmentID
	}
	if req.CustomerID != nil {
		updated.CustomerID = req.CustomerID
	}
	if req.SupplierID != nil {
		updated.SupplierID = req.SupplierID
	}
	if req.ExpenseCategoryID != nil {
		updated.ExpenseCategoryID = req.ExpenseCategoryID
	}

	if updated.TreasuryID != oldTreasuryID {
		if _, err := s.treasuryRepo.FindTreasuryByID(ctx, updated.TreasuryID); err != nil {
			return nil, err
		}
	}

	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.voucherRepo.UpdateVoucher(ctx, updated, oldTreasuryID, reverseDelta, updated.LedgerDelta()); err != nil {
		logger.Error("Failed to update voucher in repository", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, err
	}

	logger.Info("Voucher updated successfully", slog.String("voucher_id", voucherID))
	return s.voucherRepo.FindVoucherByID(ctx, kind, voucherID)
}

func (s *voucherService) DeleteVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.voucherRepo.FindVoucherByID(ctx, kind, voucherID)
	if err != nil {
		return err
	}

	reversal := existing.LedgerDelta().Neg()
	if err := s.voucherRepo.DeleteVoucher(ctx, kind, voucherID, existing.TreasuryID, reversal, userID, time.Now()); err != nil {
		logger.Error("Failed to delete voucher in repository", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return err
	}

	logger.Info("Voucher deleted successfully", slog.String("voucher_id", voucherID), slog.String("kind", string(kind)))
	return nil
}
