package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// VoucherReaderSvc defines read operations for receipt and payment vouchers
type VoucherReaderSvc interface {
	// GetVoucherByID retrieves a voucher of the given kind by its identifier.
	GetVoucherByID(ctx context.Context, kind domain.VoucherKind, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves a page of vouchers of the given kind, newest first,
	// together with the cursor token for the following page.
	ListVouchers(ctx context.Context, kind domain.VoucherKind, params dto.ListVouchersParams) ([]domain.Voucher, *string, error)
}

// VoucherWriterSvc defines write operations for receipt and payment vouchers.
// Every write adjusts the treasury balance in the same database transaction as
// the document mutation.
type VoucherWriterSvc interface {
	// CreateVoucher persists a new voucher and applies its amount to the treasury.
	CreateVoucher(ctx context.Context, kind domain.VoucherKind, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, error)

	// UpdateVoucher updates a voucher, reversing its previous ledger effect and
	// applying the new one, possibly against a different treasury.
	UpdateVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, req dto.UpdateVoucherRequest, userID string) (*domain.Voucher, error)

	// DeleteVoucher removes a voucher and reverses its ledger effect.
	DeleteVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, userID string) error
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
