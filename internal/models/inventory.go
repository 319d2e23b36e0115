package models

// InventoryItem mirrors the inventory_items table. item_name carries a unique
// constraint; the receiving upsert relies on it.
type InventoryItem struct {
	ItemID        string
	ItemName      string
	Barcode       *string
	TotalReceived int64
	TotalShipped  int64
	Balance       int64
	AuditFields
}
