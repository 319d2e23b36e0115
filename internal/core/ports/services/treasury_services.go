package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// TreasuryReaderSvc defines read operations for treasury data
type TreasuryReaderSvc interface {
	// GetTreasuryByID retrieves a specific treasury by its unique identifier.
	GetTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error)

	// ListTreasuries retrieves all treasuries with their cached balances.
	ListTreasuries(ctx context.Context) ([]domain.Treasury, error)
}

// TreasuryWriterSvc defines write operations for treasury data
type TreasuryWriterSvc interface {
	// CreateTreasury persists a new treasury with a zero opening balance.
	CreateTreasury(ctx context.Context, req dto.CreateTreasuryRequest, userID string) (*domain.Treasury, error)

	// UpdateTreasury renames an existing treasury. The balance is not writable.
	UpdateTreasury(ctx context.Context, treasuryID string, req dto.UpdateTreasuryRequest, userID string) (*domain.Treasury, error)

	// DeleteTreasury removes a treasury that has no vouchers referencing it.
	DeleteTreasury(ctx context.Context, treasuryID string, userID string) error
}

// TreasurySvcFacade combines all treasury-related service interfaces
type TreasurySvcFacade interface {
	TreasuryReaderSvc
	TreasuryWriterSvc
}
