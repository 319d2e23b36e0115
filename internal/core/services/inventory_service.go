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

type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates a new inventory service. Items can be registered
// here; stock only moves through receiving and shipment transactions.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) RegisterInventoryItem(ctx context.Context, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	item := domain.InventoryItem{
		ItemID:   uuid.NewString(),
		ItemName: req.ItemName,
		Barcode:  req.Barcode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.SaveInventoryItem(ctx, item); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save inventory item in repository", slog.String("error", err.Error()), slog.String("item_name", req.ItemName))
		}
		return nil, err
	}

	logger.Info("Inventory item registered", slog.String("item_id", item.ItemID), slog.String("item_name", item.ItemName))
	return &item, nil
}

func (s *inventoryService) GetInventoryItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	item, err := s.inventoryRepo.FindInventoryItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find inventory item in repository", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) ListInventory(ctx context.Context, params dto.ListInventoryParams) ([]domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	items, err := s.inventoryRepo.ListInventory(ctx, params.Search, params.LowStock)
	if err != nil {
		logger.Error("Failed to list inventory from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}
