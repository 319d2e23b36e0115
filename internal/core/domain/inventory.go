package domain

// InventoryItem is a stock-keeping unit tracked by received/shipped/balance
// counters. ItemName is the legacy business key (receiving lines upsert by
// name); ItemID is the stable identifier assigned once at creation.
//
// Invariant: Balance == TotalReceived - TotalShipped. Whether Balance may go
// negative is a policy decision (ALLOW_NEGATIVE_STOCK), not a schema rule.
type InventoryItem struct {
	ItemID        string  `json:"itemID"`
	ItemName      string  `json:"itemName"`
	Barcode       *string `json:"barcode,omitempty"`
	TotalReceived int64   `json:"totalReceived"`
	TotalShipped  int64   `json:"totalShipped"`
	Balance       int64   `json:"balance"`
	AuditFields
}

// InventoryAdjustment is one counter movement applied to an inventory item
// inside a receiving or shipment transaction. ReceivedDelta and ShippedDelta
// may be negative when a document is deleted and its effect reversed.
type InventoryAdjustment struct {
	ItemID        string
	ItemName      string
	Barcode       *string
	ReceivedDelta int64
	ShippedDelta  int64
}

// BalanceDelta is the net effect of the adjustment on the item balance.
func (a InventoryAdjustment) BalanceDelta() int64 {
	return a.ReceivedDelta - a.ShippedDelta
}
