package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest defines one line of a purchase invoice payload.
type PurchaseItemRequest struct {
	ItemName    string           `json:"itemName" binding:"required"`
	ItemCode    *string          `json:"itemCode"`
	Barcode     *string          `json:"barcode"`
	QtyCartons  *int64           `json:"qtyCartons"`
	QtyUnits    *int64           `json:"qtyUnits"`
	Price       *decimal.Decimal `json:"price"`
	Total       *decimal.Decimal `json:"total"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// CreatePurchaseInvoiceRequest defines the data needed to create a purchase invoice.
type CreatePurchaseInvoiceRequest struct {
	InvoiceNumber string                `json:"invoiceNumber" binding:"required"`
	Date          time.Time             `json:"date" binding:"required"`
	SupplierID    string                `json:"supplierID" binding:"required"`
	ReferenceNo   *string               `json:"referenceNo"`
	Notes         *string               `json:"notes"`
	ContainerNo   *string               `json:"containerNo"`
	DownPayment   *decimal.Decimal      `json:"downPayment"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseInvoiceRequest defines the data allowed for updating a purchase
// invoice. Providing Items replaces the full item list.
type UpdatePurchaseInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoiceNumber"`
	Date          *time.Time            `json:"date"`
	SupplierID    *string               `json:"supplierID"`
	ReferenceNo   *string               `json:"referenceNo"`
	Notes         *string               `json:"notes"`
	ContainerNo   *string               `json:"containerNo"`
	DownPayment   *decimal.Decimal      `json:"downPayment"`
	Items         []PurchaseItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// ListParams defines the shared limit/offset query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// PurchaseItemResponse defines the data returned for a purchase line.
type PurchaseItemResponse struct {
	PurchaseItemID string           `json:"purchaseItemID"`
	ItemName       string           `json:"itemName"`
	ItemCode       *string          `json:"itemCode,omitempty"`
	Barcode        *string          `json:"barcode,omitempty"`
	QtyCartons     *int64           `json:"qtyCartons,omitempty"`
	QtyUnits       *int64           `json:"qtyUnits,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Total          *decimal.Decimal `json:"total,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Description    *string          `json:"description,omitempty"`
}

// PurchaseInvoiceResponse defines the data returned for a purchase invoice.
type PurchaseInvoiceResponse struct {
	InvoiceID     string                 `json:"invoiceID"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	ReferenceNo   *string                `json:"referenceNo,omitempty"`
	Date          time.Time              `json:"date"`
	SupplierID    string                 `json:"supplierID"`
	SupplierName  string                 `json:"supplierName"`
	Notes         *string                `json:"notes,omitempty"`
	ContainerNo   *string                `json:"containerNo,omitempty"`
	DownPayment   *decimal.Decimal       `json:"downPayment,omitempty"`
	Items         []PurchaseItemResponse `json:"items"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToPurchaseItemResponse converts a domain.PurchaseItem to its response DTO.
func ToPurchaseItemResponse(item *domain.PurchaseItem) PurchaseItemResponse {
	return PurchaseItemResponse{
		PurchaseItemID: item.PurchaseItemID,
		ItemName:       item.ItemName,
		ItemCode:       item.ItemCode,
		Barcode:        item.Barcode,
		QtyCartons:     item.QtyCartons,
		QtyUnits:       item.QtyUnits,
		Price:          item.Price,
		Total:          item.Total,
		Category:       item.Category,
		Description:    item.Description,
	}
}

// ToPurchaseInvoiceResponse converts a domain.PurchaseInvoice to its response DTO.
func ToPurchaseInvoiceResponse(inv *domain.PurchaseInvoice) PurchaseInvoiceResponse {
	items := make([]PurchaseItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToPurchaseItemResponse(&item)
	}
	return PurchaseInvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ReferenceNo:   inv.ReferenceNo,
		Date:          inv.Date,
		SupplierID:    inv.SupplierID,
		SupplierName:  inv.SupplierName,
		Notes:         inv.Notes,
		ContainerNo:   inv.ContainerNo,
		DownPayment:   inv.DownPayment,
		Items:         items,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
		LastUpdatedAt: inv.LastUpdatedAt,
		LastUpdatedBy: inv.LastUpdatedBy,
	}
}

// ToListPurchaseInvoiceResponse converts a slice of domain.PurchaseInvoice to response DTOs.
func ToListPurchaseInvoiceResponse(invoices []domain.PurchaseInvoice) []PurchaseInvoiceResponse {
	res := make([]PurchaseInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToPurchaseInvoiceResponse(&inv)
	}
	return res
}
