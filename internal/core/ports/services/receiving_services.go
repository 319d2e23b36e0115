package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// ReceivingReaderSvc defines read operations for receiving invoices
type ReceivingReaderSvc interface {
	// GetReceivingInvoiceByID retrieves a receiving invoice with its items.
	GetReceivingInvoiceByID(ctx context.Context, invoiceID string) (*domain.ReceivingInvoice, error)

	// ListReceivingInvoices retrieves a paginated list of receiving invoices.
	ListReceivingInvoices(ctx context.Context, params dto.ListParams) ([]domain.ReceivingInvoice, error)
}

// ReceivingWriterSvc defines write operations for receiving invoices. Creating
// an invoice increments inventory per line and deleting one reverses those
// increments, both atomically with the document write.
type ReceivingWriterSvc interface {
	// CreateReceivingInvoice persists a receiving invoice and applies its
	// inventory increments.
	CreateReceivingInvoice(ctx context.Context, req dto.CreateReceivingInvoiceRequest, userID string) (*domain.ReceivingInvoice, error)

	// DeleteReceivingInvoice removes a receiving invoice and reverses its
	// inventory increments. It fails if shipments reference its items.
	DeleteReceivingInvoice(ctx context.Context, invoiceID string, userID string) error
}

// ReceivingSvcFacade combines all receiving-related service interfaces
type ReceivingSvcFacade interface {
	ReceivingReaderSvc
	ReceivingWriterSvc
}
