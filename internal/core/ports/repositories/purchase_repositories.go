package repositories

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// PurchaseReader defines read operations for purchase invoice data
type PurchaseReader interface {
	// FindPurchaseInvoiceByID retrieves a purchase invoice and its items.
	FindPurchaseInvoiceByID(ctx context.Context, invoiceID string) (*domain.PurchaseInvoice, error)

	// ListPurchaseInvoices retrieves a paginated list of purchase invoices ordered by date descending.
	ListPurchaseInvoices(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error)

	// FindPurchaseItemsByInvoiceID retrieves the items of a purchase invoice.
	FindPurchaseItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.PurchaseItem, error)

	// FindPurchaseItemsByIDs retrieves purchase items by their IDs, keyed by ID.
	FindPurchaseItemsByIDs(ctx context.Context, purchaseItemIDs []string) (map[string]domain.PurchaseItem, error)
}

// PurchaseWriter defines write operations for purchase invoice data
type PurchaseWriter interface {
	// SavePurchaseInvoice persists an invoice and its items in one transaction.
	SavePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error

	// UpdatePurchaseInvoice replaces an invoice's header and items in one transaction.
	UpdatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error

	// DeletePurchaseInvoice removes an invoice and its items. The database rejects
	// the delete while receiving invoices still reference it.
	DeletePurchaseInvoice(ctx context.Context, invoiceID string) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
// This is a facade for clients that need access to all operations
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
