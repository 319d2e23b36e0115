package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nileport/trading_erp/internal/core/domain"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// FindInventoryItemByID retrieves a specific inventory item by its unique identifier.
	FindInventoryItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// FindInventoryItemByName retrieves an inventory item by its business key.
	FindInventoryItemByName(ctx context.Context, itemName string) (*domain.InventoryItem, error)

	// ListInventory retrieves inventory items, optionally filtered by a name/barcode
	// search term and a low-stock threshold (balance <= lowStock).
	ListInventory(ctx context.Context, search *string, lowStock *int64) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory master data
type InventoryWriter interface {
	// SaveInventoryItem registers a new inventory item with zero counters.
	// Returns apperrors.ErrDuplicate when the item name is already taken.
	SaveInventoryItem(ctx context.Context, item domain.InventoryItem) error
}

// InventoryTransactionSupport defines operations that support stock-moving transactions
type InventoryTransactionSupport interface {
	// UpsertInventoryAdjustmentInTx applies an adjustment within a given transaction,
	// creating the item on first receipt of its name.
	UpsertInventoryAdjustmentInTx(ctx context.Context, tx pgx.Tx, adj domain.InventoryAdjustment, userID string, now time.Time) error

	// DecrementInventoryInTx applies a shipment decrement within a given transaction.
	// When enforceStock is true the decrement only succeeds if enough balance
	// remains, otherwise it returns apperrors.ErrInsufficientStock.
	DecrementInventoryInTx(ctx context.Context, tx pgx.Tx, itemName string, units int64, enforceStock bool, userID string, now time.Time) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
// This is a facade for clients that need access to all operations
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
	InventoryTransactionSupport
}

// InventoryRepositoryWithTx extends InventoryRepositoryFacade with transaction capabilities
type InventoryRepositoryWithTx interface {
	InventoryRepositoryFacade
	TransactionManager
}
