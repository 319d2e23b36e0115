package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// InventorySvcFacade defines operations over the inventory counters. Items are
// created implicitly by receiving (upsert-by-name) or registered explicitly
// here; the counters themselves only move inside receiving and shipment
// transactions.
type InventorySvcFacade interface {
	// RegisterInventoryItem creates an inventory item with zero counters.
	RegisterInventoryItem(ctx context.Context, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error)

	// GetInventoryItemByID retrieves one inventory item.
	GetInventoryItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListInventory retrieves the stock report, optionally filtered by a name or
	// barcode search and a low stock threshold.
	ListInventory(ctx context.Context, params dto.ListInventoryParams) ([]domain.InventoryItem, error)
}
