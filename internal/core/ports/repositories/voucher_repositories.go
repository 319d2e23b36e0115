package repositories

import (
	"context"
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListVouchersParams narrows a voucher listing. Zero-value fields are ignored.
type ListVouchersParams struct {
	TreasuryID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	NextToken  *string
}

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a specific voucher of the given kind by its unique identifier.
	FindVoucherByID(ctx context.Context, kind domain.VoucherKind, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves a paginated list of vouchers of one kind using token-based pagination.
	// It returns the vouchers, a token for the next page, and an error.
	ListVouchers(ctx context.Context, kind domain.VoucherKind, params ListVouchersParams) ([]domain.Voucher, *string, error)
}

// VoucherWriter defines write operations for voucher data. Each write carries
// its treasury balance effect so document and ledger commit in one transaction.
type VoucherWriter interface {
	// SaveVoucher persists a voucher and applies treasuryDelta to its treasury atomically.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, treasuryDelta decimal.Decimal) error

	// UpdateVoucher updates a voucher, reversing reverseDelta on the old treasury and
	// applying applyDelta to the voucher's (possibly different) current treasury,
	// all within a single transaction.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher, oldTreasuryID string, reverseDelta, applyDelta decimal.Decimal) error

	// DeleteVoucher removes a voucher and applies reversalDelta to its treasury atomically.
	DeleteVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, treasuryID string, reversalDelta decimal.Decimal, userID string, now time.Time) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
// This is a facade for clients that need access to all operations
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction capabilities
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
