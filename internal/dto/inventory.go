package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// CreateInventoryItemRequest defines the payload for registering an inventory
// item ahead of any stock movement.
type CreateInventoryItemRequest struct {
	ItemName string  `json:"itemName" binding:"required"`
	Barcode  *string `json:"barcode,omitempty"`
}

// ListInventoryParams defines query parameters for the inventory report.
// Search matches item names and barcodes; LowStock keeps only items whose
// balance is at or below the threshold.
type ListInventoryParams struct {
	Search   *string `form:"search"`
	LowStock *int64  `form:"lowStock"`
}

// InventoryItemResponse defines the data returned for an inventory item.
type InventoryItemResponse struct {
	ItemID        string    `json:"itemID"`
	ItemName      string    `json:"itemName"`
	Barcode       *string   `json:"barcode,omitempty"`
	TotalReceived int64     `json:"totalReceived"`
	TotalShipped  int64     `json:"totalShipped"`
	Balance       int64     `json:"balance"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its response DTO.
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:        item.ItemID,
		ItemName:      item.ItemName,
		Barcode:       item.Barcode,
		TotalReceived: item.TotalReceived,
		TotalShipped:  item.TotalShipped,
		Balance:       item.Balance,
		LastUpdatedAt: item.LastUpdatedAt,
	}
}

// ToListInventoryResponse converts a slice of domain.InventoryItem to response DTOs.
func ToListInventoryResponse(items []domain.InventoryItem) []InventoryItemResponse {
	res := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		res[i] = ToInventoryItemResponse(&item)
	}
	return res
}

// ListInventoryResponse wraps the inventory report.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}
