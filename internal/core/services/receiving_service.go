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
)

type receivingService struct {
	receivingRepo portsrepo.ReceivingRepositoryFacade
	purchaseRepo  portsrepo.PurchaseRepositoryFacade
}

// NewReceivingService creates a new receiving invoice service.
func NewReceivingService(receivingRepo portsrepo.ReceivingRepositoryFacade, purchaseRepo portsrepo.PurchaseRepositoryFacade) portssvc.ReceivingSvcFacade {
	return &receivingService{receivingRepo: receivingRepo, purchaseRepo: purchaseRepo}
}

// CreateReceivingInvoice persists the invoice and increments the inventory
// counters of each received item in one transaction. Items are keyed by name:
// the first receipt of a name creates the inventory row.
func (s *receivingService) CreateReceivingInvoice(ctx context.Context, req dto.CreateReceivingInvoiceRequest, userID string) (*domain.ReceivingInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, err := s.purchaseRepo.FindPurchaseInvoiceByID(ctx, req.PurchaseID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		itemIDs[i] = item.PurchaseItemID
	}
	purchaseItems, err := s.purchaseRepo.FindPurchaseItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.ReceivingInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		Date:          req.Date,
		PurchaseID:    req.PurchaseID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	invoice.Items = make([]domain.ReceivingItem, len(req.Items))
	adjustments := make([]domain.InventoryAdjustment, len(req.Items))
	for i, item := range req.Items {
		purchaseItem, ok := purchaseItems[item.PurchaseItemID]
		if !ok {
			return nil, fmt.Errorf("%w: purchase item %s not found", apperrors.ErrNotFound, item.PurchaseItemID)
		}
		if purchaseItem.InvoiceID != purchase.InvoiceID {
			return nil, fmt.Errorf("%w: purchase item %s does not belong to invoice %s", apperrors.ErrValidation, item.PurchaseItemID, purchase.InvoiceID)
		}

		invoice.Items[i] = domain.ReceivingItem{
			ReceivingItemID: uuid.NewString(),
			InvoiceID:       invoice.InvoiceID,
			PurchaseItemID:  item.PurchaseItemID,
			ReceivedUnits:   item.ReceivedUnits,
			DamagedUnits:    item.DamagedUnits,
			Notes:           item.Notes,
			ItemName:        purchaseItem.ItemName,
			Barcode:         purchaseItem.Barcode,
		}
		adjustments[i] = domain.InventoryAdjustment{
			ItemID:        uuid.NewString(),
			ItemName:      purchaseItem.ItemName,
			Barcode:       purchaseItem.Barcode,
			ReceivedDelta: item.ReceivedUnits,
		}
	}

	if err := s.receivingRepo.SaveReceivingInvoice(ctx, invoice, adjustments); err != nil {
		logger.Error("Failed to save receiving invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	logger.Info("Receiving invoice created successfully", slog.String("invoice_id", invoice.InvoiceID), slog.Int("items", len(invoice.Items)))
	return s.receivingRepo.FindReceivingInvoiceByID(ctx, invoice.InvoiceID)
}

func (s *receivingService) GetReceivingInvoiceByID(ctx context.Context, invoiceID string) (*domain.ReceivingInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoice, err := s.receivingRepo.FindReceivingInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find receiving invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *receivingService) ListReceivingInvoices(ctx context.Context, params dto.ListParams) ([]domain.ReceivingInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	invoices, err := s.receivingRepo.ListReceivingInvoices(ctx, limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list receiving invoices from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if invoices == nil {
		return []domain.ReceivingInvoice{}, nil
	}
	return invoices, nil
}

// DeleteReceivingInvoice removes the invoice and reverses its inventory
// increments in one transaction. The repository rejects the delete while
// shipments still reference any of its items.
func (s *receivingService) DeleteReceivingInvoice(ctx context.Context, invoiceID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.receivingRepo.FindReceivingInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	reversals := make([]domain.InventoryAdjustment, len(invoice.Items))
	for i, item := range invoice.Items {
		reversals[i] = domain.InventoryAdjustment{
			ItemID:        uuid.NewString(),
			ItemName:      item.ItemName,
			Barcode:       item.Barcode,
			ReceivedDelta: -item.ReceivedUnits,
		}
	}

	if err := s.receivingRepo.DeleteReceivingInvoice(ctx, invoiceID, reversals, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete receiving invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return err
	}

	logger.Info("Receiving invoice deleted successfully", slog.String("invoice_id", invoiceID))
	return nil
}
