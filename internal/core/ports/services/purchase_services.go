package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchase invoices
type PurchaseReaderSvc interface {
	// GetPurchaseInvoiceByID retrieves a purchase invoice with its items.
	GetPurchaseInvoiceByID(ctx context.Context, invoiceID string) (*domain.PurchaseInvoice, error)

	// ListPurchaseInvoices retrieves a paginated list of purchase invoices.
	ListPurchaseInvoices(ctx context.Context, params dto.ListParams) ([]domain.PurchaseInvoice, error)
}

// PurchaseWriterSvc defines write operations for purchase invoices
type PurchaseWriterSvc interface {
	// CreatePurchaseInvoice persists a new purchase invoice and its items.
	CreatePurchaseInvoice(ctx context.Context, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error)

	// UpdatePurchaseInvoice updates a purchase invoice. A provided item list
	// replaces the existing one and is rejected once goods have been received.
	UpdatePurchaseInvoice(ctx context.Context, invoiceID string, req dto.UpdatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error)

	// DeletePurchaseInvoice removes a purchase invoice that has no receiving
	// invoices referencing it.
	DeletePurchaseInvoice(ctx context.Context, invoiceID string, userID string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
