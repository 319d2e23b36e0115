package domain

import "time"

// ShipmentItem records goods sent to a customer against one receiving line.
type ShipmentItem struct {
	ShipmentItemID  string `json:"shipmentItemID"`
	ShipmentID      string `json:"shipmentID"`
	ReceivingItemID string `json:"receivingItemID"`
	ShippedUnits    int64  `json:"shippedUnits"`

	// Resolved through receiving item -> purchase item for the inventory join.
	ItemName string `json:"itemName,omitempty"`
}

// Shipment records goods leaving inventory towards a customer. Creating one
// decrements inventory per line; deleting one reverses the decrements.
type Shipment struct {
	ShipmentID      string         `json:"shipmentID"`
	ReferenceNo     string         `json:"referenceNo"`
	Date            time.Time      `json:"date"`
	CustomerID      string         `json:"customerID"`
	CustomerName    string         `json:"customerName,omitempty"`
	ContainerID     *string        `json:"containerID,omitempty"`
	ContainerNo     *string        `json:"containerNo,omitempty"`
	ShippingCompany *string        `json:"shippingCompany,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
	Items           []ShipmentItem `json:"items"`
	AuditFields
}
