package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem is one ordered line of a purchase invoice. Its ItemName is the
// join key the inventory ledger uses once the goods are received.
type PurchaseItem struct {
	PurchaseItemID string           `json:"purchaseItemID"`
	InvoiceID      string           `json:"invoiceID"`
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

// PurchaseInvoice is the header of goods ordered from a supplier. It feeds the
// receiving workflow as the catalog of orderable items but carries no ledger
// effect of its own.
type PurchaseInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ReferenceNo   *string         `json:"referenceNo,omitempty"`
	Date          time.Time       `json:"date"`
	SupplierID    string          `json:"supplierID"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	ContainerNo   *string         `json:"containerNo,omitempty"`
	DownPayment   *decimal.Decimal `json:"downPayment,omitempty"`
	Items         []PurchaseItem  `json:"items"`
	AuditFields
}
