package repositories

import (
	"context"
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ReceivingReader defines read operations for receiving invoice data
type ReceivingReader interface {
	// FindReceivingInvoiceByID retrieves a receiving invoice and its items.
	FindReceivingInvoiceByID(ctx context.Context, invoiceID string) (*domain.ReceivingInvoice, error)

	// ListReceivingInvoices retrieves a paginated list of receiving invoices ordered by date descending.
	ListReceivingInvoices(ctx context.Context, limit int, offset int) ([]domain.ReceivingInvoice, error)

	// FindReceivingItemsByInvoiceID retrieves the items of a receiving invoice with their purchase line details.
	FindReceivingItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.ReceivingItem, error)

	// FindReceivingItemByID retrieves one receiving item with its purchase line details.
	FindReceivingItemByID(ctx context.Context, receivingItemID string) (*domain.ReceivingItem, error)
}

// ReceivingWriter defines write operations for receiving invoice data. Each
// write carries its inventory effect so document and stock commit in one
// transaction.
type ReceivingWriter interface {
	// SaveReceivingInvoice persists an invoice with its items and applies the
	// given inventory adjustments atomically.
	SaveReceivingInvoice(ctx context.Context, invoice domain.ReceivingInvoice, adjustments []domain.InventoryAdjustment) error

	// DeleteReceivingInvoice removes an invoice and its items, applying the given
	// reversal adjustments atomically.
	DeleteReceivingInvoice(ctx context.Context, invoiceID string, reversals []domain.InventoryAdjustment, userID string, now time.Time) error
}

// ReceivingRepositoryFacade combines all receiving-related repository interfaces
// This is a facade for clients that need access to all operations
type ReceivingRepositoryFacade interface {
	ReceivingReader
	ReceivingWriter
}

// ReceivingRepositoryWithTx extends ReceivingRepositoryFacade with transaction capabilities
type ReceivingRepositoryWithTx interface {
	ReceivingRepositoryFacade
	TransactionManager
}
