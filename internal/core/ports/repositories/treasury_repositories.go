package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TreasuryReader defines read operations for treasury data
type TreasuryReader interface {
	// FindTreasuryByID retrieves a specific treasury by its unique identifier.
	FindTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error)

	// ListTreasuries retrieves all treasuries, newest first.
	ListTreasuries(ctx context.Context) ([]domain.Treasury, error)
}

// TreasuryWriter defines write operations for treasury data
type TreasuryWriter interface {
	// SaveTreasury persists a new treasury.
	SaveTreasury(ctx context.Context, treasury domain.Treasury) error

	// UpdateTreasury updates a treasury's name.
	UpdateTreasury(ctx context.Context, treasury domain.Treasury) error

	// DeleteTreasury removes a treasury. The database rejects the delete while
	// vouchers still reference it.
	DeleteTreasury(ctx context.Context, treasuryID string) error
}

// TreasuryTransactionSupport defines operations that support ledger transactions
type TreasuryTransactionSupport interface {
	// FindTreasuryByIDForUpdate selects a treasury and locks its row within a transaction.
	FindTreasuryByIDForUpdate(ctx context.Context, tx pgx.Tx, treasuryID string) (*domain.Treasury, error)

	// AdjustTreasuryBalanceInTx applies a signed delta to a treasury balance within a given transaction.
	AdjustTreasuryBalanceInTx(ctx context.Context, tx pgx.Tx, treasuryID string, delta decimal.Decimal, userID string, now time.Time) error
}

// TreasuryRepositoryFacade combines all treasury-related repository interfaces
// This is a facade for clients that need access to all operations
type TreasuryRepositoryFacade interface {
	TreasuryReader
	TreasuryWriter
	TreasuryTransactionSupport
}

// TreasuryRepositoryWithTx extends TreasuryRepositoryFacade with transaction capabilities
type TreasuryRepositoryWithTx interface {
	TreasuryRepositoryFacade
	TransactionManager
}
