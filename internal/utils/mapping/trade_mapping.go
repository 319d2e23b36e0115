package mapping

import (
	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/models"
)

// ToDomainPurchaseInvoice converts a purchase invoice header model (items
// attached separately).
func ToDomainPurchaseInvoice(m models.PurchaseInvoice) domain.PurchaseInvoice {
	return domain.PurchaseInvoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		ReferenceNo:   m.ReferenceNo,
		Date:          m.InvoiceDate,
		SupplierID:    m.SupplierID,
		SupplierName:  m.SupplierName,
		Notes:         m.Notes,
		ContainerNo:   m.ContainerNo,
		DownPayment:   m.DownPayment,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseItem converts a purchase item model.
func ToDomainPurchaseItem(m models.PurchaseItem) domain.PurchaseItem {
	return domain.PurchaseItem{
		PurchaseItemID: m.PurchaseItemID,
		InvoiceID:      m.InvoiceID,
		ItemName:       m.ItemName,
		ItemCode:       m.ItemCode,
		Barcode:        m.Barcode,
		QtyCartons:     m.QtyCartons,
		QtyUnits:       m.QtyUnits,
		Price:          m.Price,
		Total:          m.Total,
		Category:       m.Category,
		Description:    m.Description,
	}
}

// ToDomainReceivingInvoice converts a receiving invoice header model.
func ToDomainReceivingInvoice(m models.ReceivingInvoice) domain.ReceivingInvoice {
	return domain.ReceivingInvoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		Date:          m.InvoiceDate,
		PurchaseID:    m.PurchaseID,
		Notes:         m.Notes,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceivingItem converts a receiving item model.
func ToDomainReceivingItem(m models.ReceivingItem) domain.ReceivingItem {
	return domain.ReceivingItem{
		ReceivingItemID: m.ReceivingItemID,
		InvoiceID:       m.InvoiceID,
		PurchaseItemID:  m.PurchaseItemID,
		ReceivedUnits:   m.ReceivedUnits,
		DamagedUnits:    m.DamagedUnits,
		Notes:           m.Notes,
		ItemName:        m.ItemName,
		Barcode:         m.Barcode,
	}
}

// ToDomainShipment converts a shipment header model.
func ToDomainShipment(m models.Shipment) domain.Shipment {
	return domain.Shipment{
		ShipmentID:      m.ShipmentID,
		ReferenceNo:     m.ReferenceNo,
		Date:            m.ShipmentDate,
		CustomerID:      m.CustomerID,
		CustomerName:    m.CustomerName,
		ContainerID:     m.ContainerID,
		ContainerNo:     m.ContainerNo,
		ShippingCompany: m.ShippingCompany,
		Notes:           m.Notes,
		AuditFields:     toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShipmentItem converts a shipment item model.
func ToDomainShipmentItem(m models.ShipmentItem) domain.ShipmentItem {
	return domain.ShipmentItem{
		ShipmentItemID:  m.ShipmentItemID,
		ShipmentID:      m.ShipmentID,
		ReceivingItemID: m.ReceivingItemID,
		ShippedUnits:    m.ShippedUnits,
		ItemName:        m.ItemName,
	}
}
