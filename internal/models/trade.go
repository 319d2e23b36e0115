package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice mirrors the purchase_invoices table.
type PurchaseInvoice struct {
	InvoiceID     string
	InvoiceNumber string
	ReferenceNo   *string
	InvoiceDate   time.Time
	SupplierID    string
	SupplierName  string // joined
	Notes         *string
	ContainerNo   *string
	DownPayment   *decimal.Decimal
	AuditFields
}

// PurchaseItem mirrors the purchase_items table.
type PurchaseItem struct {
	PurchaseItemID string
	InvoiceID      string
	ItemName       string
	ItemCode       *string
	Barcode        *string
	QtyCartons     *int64
	QtyUnits       *int64
	Price          *decimal.Decimal
	Total          *decimal.Decimal
	Category       *string
	Description    *string
}

// ReceivingInvoice mirrors the receiving_invoices table.
type ReceivingInvoice struct {
	InvoiceID     string
	InvoiceNumber string
	InvoiceDate   time.Time
	PurchaseID    string
	Notes         *string
	AuditFields
}

// ReceivingItem mirrors the receiving_items table.
type ReceivingItem struct {
	ReceivingItemID string
	InvoiceID       string
	PurchaseItemID  string
	ReceivedUnits   int64
	DamagedUnits    int64
	Notes           *string
	ItemName        string  // joined via purchase_items
	Barcode         *string // joined via purchase_items
}

// Shipment mirrors the shipments table.
type Shipment struct {
	ShipmentID      string
	ReferenceNo     string
	ShipmentDate    time.Time
	CustomerID      string
	CustomerName    string // joined
	ContainerID     *string
	ContainerNo     *string
	ShippingCompany *string
	Notes           *string
	AuditFields
}

// ShipmentItem mirrors the shipment_items table.
type ShipmentItem struct {
	ShipmentItemID  string
	ShipmentID      string
	ReceivingItemID string
	ShippedUnits    int64
	ItemName        string // joined via receiving_items -> purchase_items
}
