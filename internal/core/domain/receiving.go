package domain

import "time"

// ReceivingItem records goods physically received against one purchase line.
// DamagedUnits is informational and not folded into inventory math.
type ReceivingItem struct {
	ReceivingItemID string  `json:"receivingItemID"`
	InvoiceID       string  `json:"invoiceID"`
	PurchaseItemID  string  `json:"purchaseItemID"`
	ReceivedUnits   int64   `json:"receivedUnits"`
	DamagedUnits    int64   `json:"damagedUnits"`
	Notes           *string `json:"notes,omitempty"`

	// Resolved from the referenced purchase item for display and for the
	// inventory ledger join.
	ItemName string  `json:"itemName,omitempty"`
	Barcode  *string `json:"barcode,omitempty"`
}

// ReceivingInvoice records goods received against a purchase invoice. Creating
// one increments inventory per line; deleting one reverses those increments.
// Both happen in the same database transaction as the document write.
type ReceivingInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	PurchaseID    string          `json:"purchaseID"`
	Notes         *string         `json:"notes,omitempty"`
	Items         []ReceivingItem `json:"items"`
	AuditFields
}
