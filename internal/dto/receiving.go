package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ReceivingItemRequest defines one line of a receiving invoice payload.
// Zero received units is a valid empty line and moves no stock.
// DamagedUnits are recorded but do not enter the inventory counters.
type ReceivingItemRequest struct {
	PurchaseItemID string  `json:"purchaseItemID" binding:"required"`
	ReceivedUnits  int64   `json:"receivedUnits" binding:"gte=0"`
	DamagedUnits   int64   `json:"damagedUnits" binding:"gte=0"`
	Notes          *string `json:"notes"`
}

// CreateReceivingInvoiceRequest defines the data needed to create a receiving invoice.
type CreateReceivingInvoiceRequest struct {
	InvoiceNumber string                 `json:"invoiceNumber" binding:"required"`
	Date          time.Time              `json:"date" binding:"required"`
	PurchaseID    string                 `json:"purchaseID" binding:"required"`
	Notes         *string                `json:"notes"`
	Items         []ReceivingItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReceivingItemResponse defines the data returned for a receiving line.
type ReceivingItemResponse struct {
	ReceivingItemID string  `json:"receivingItemID"`
	PurchaseItemID  string  `json:"purchaseItemID"`
	ItemName        string  `json:"itemName"`
	Barcode         *string `json:"barcode,omitempty"`
	ReceivedUnits   int64   `json:"receivedUnits"`
	DamagedUnits    int64   `json:"damagedUnits"`
	Notes           *string `json:"notes,omitempty"`
}

// ReceivingInvoiceResponse defines the data returned for a receiving invoice.
type ReceivingInvoiceResponse struct {
	InvoiceID     string                  `json:"invoiceID"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	Date          time.Time               `json:"date"`
	PurchaseID    string                  `json:"purchaseID"`
	Notes         *string                 `json:"notes,omitempty"`
	Items         []ReceivingItemResponse `json:"items"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// ToReceivingItemResponse converts a domain.ReceivingItem to its response DTO.
func ToReceivingItemResponse(item *domain.ReceivingItem) ReceivingItemResponse {
	return ReceivingItemResponse{
		ReceivingItemID: item.ReceivingItemID,
		PurchaseItemID:  item.PurchaseItemID,
		ItemName:        item.ItemName,
		Barcode:         item.Barcode,
		ReceivedUnits:   item.ReceivedUnits,
		DamagedUnits:    item.DamagedUnits,
		Notes:           item.Notes,
	}
}

// ToReceivingInvoiceResponse converts a domain.ReceivingInvoice to its response DTO.
func ToReceivingInvoiceResponse(inv *domain.ReceivingInvoice) ReceivingInvoiceResponse {
	items := make([]ReceivingItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToReceivingItemResponse(&item)
	}
	return ReceivingInvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		PurchaseID:    inv.PurchaseID,
		Notes:         inv.Notes,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
		LastUpdatedAt: inv.LastUpdatedAt,
		LastUpdatedBy: inv.LastUpdatedBy,
	}
}

// ToListReceivingInvoiceResponse converts a slice of domain.ReceivingInvoice to response DTOs.
func ToListReceivingInvoiceResponse(invoices []domain.ReceivingInvoice) []ReceivingInvoiceResponse {
	res := make([]ReceivingInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToReceivingInvoiceResponse(&inv)
	}
	return res
}
