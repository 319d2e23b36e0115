package services

import (
	"context"
	"errors"
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

type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewPurchaseService creates a new purchase invoice service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo}
}

func buildPurchaseItems(invoiceID string, reqs []dto.PurchaseItemRequest) []domain.PurchaseItem {
	items := make([]domain.PurchaseItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.PurchaseItem{
			PurchaseItemID: uuid.NewString(),
			InvoiceID:      invoiceID,
			ItemName:       r.ItemName,
			ItemCode:       r.ItemCode,
			Barcode:        r.Barcode,
			QtyCartons:     r.QtyCartons,
			QtyUnits:       r.QtyUnits,
			Price:          r.Price,
			Total:          r.Total,
			Category:       r.Category,
			Description:    r.Description,
		}
	}
	return items
}

func (s *purchaseService) CreatePurchaseInvoice(ctx context.Context, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.PurchaseInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		ReferenceNo:   req.ReferenceNo,
		Date:          req.Date,
		SupplierID:    req.SupplierID,
		Notes:         req.Notes,
		ContainerNo:   req.ContainerNo,
		DownPayment:   req.DownPayment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	invoice.Items = buildPurchaseItems(invoice.InvoiceID, req.Items)

	if err := s.purchaseRepo.SavePurchaseInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save purchase invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	logger.Info("Purchase invoice created successfully", slog.String("invoice_id", invoice.InvoiceID), slog.Int("items", len(invoice.Items)))
	return s.purchaseRepo.FindPurchaseInvoiceByID(ctx, invoice.InvoiceID)
}

func (s *purchaseService) GetPurchaseInvoiceByID(ctx context.Context, invoiceID string) (*domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoice, err := s.purchaseRepo.FindPurchaseInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find purchase invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *purchaseService) ListPurchaseInvoices(ctx context.Context, params dto.ListParams) ([]domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	invoices, err := s.purchaseRepo.ListPurchaseInvoices(ctx, limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list purchase invoices from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if invoices == nil {
		return []domain.PurchaseInvoice{}, nil
	}
	return invoices, nil
}

// UpdatePurchaseInvoice merges the request into the stored invoice. A provided
// item list replaces the existing one; the repository rejects the replacement
// once receiving invoices reference the old items.
func (s *purchaseService) UpdatePurchaseInvoice(ctx context.Context, invoiceID string, req dto.UpdatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.purchaseRepo.FindPurchaseInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Date != nil {
		invoice.Date = *req.Date
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID); err != nil {
			return nil, err
		}
		invoice.SupplierID = *req.SupplierID
	}
	if req.ReferenceNo != nil {
		invoice.ReferenceNo = req.ReferenceNo
	}
	if req.Notes != nil {
		invoice.Notes = req.Notes
	}
	if req.ContainerNo != nil {
		invoice.ContainerNo = req.ContainerNo
	}
	if req.DownPayment != nil {
		invoice.DownPayment = req.DownPayment
	}
	if req.Items != nil {
		invoice.Items = buildPurchaseItems(invoice.InvoiceID, req.Items)
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.purchaseRepo.UpdatePurchaseInvoice(ctx, *invoice); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to update purchase invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	logger.Info("Purchase invoice updated successfully", slog.String("invoice_id", invoiceID))
	return s.purchaseRepo.FindPurchaseInvoiceByID(ctx, invoiceID)
}

func (s *purchaseService) DeletePurchaseInvoice(ctx context.Context, invoiceID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.purchaseRepo.DeletePurchaseInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete purchase invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return err
	}

	logger.Info("Purchase invoice deleted successfully", slog.String("invoice_id", invoiceID))
	return nil
}
