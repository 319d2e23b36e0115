package mapping

import (
	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/models"
)

// ToDomainInventoryItem converts an inventory item DB model to its domain form.
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:        m.ItemID,
		ItemName:      m.ItemName,
		Barcode:       m.Barcode,
		TotalReceived: m.TotalReceived,
		TotalShipped:  m.TotalShipped,
		Balance:       m.Balance,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryItemSlice converts a slice of inventory item models.
func ToDomainInventoryItemSlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}
