package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ShipmentItemRequest defines one line of a shipment payload. The receiving
// item it references determines which inventory item the units leave from.
type ShipmentItemRequest struct {
	ReceivingItemID string `json:"receivingItemID" binding:"required"`
	ShippedUnits    int64  `json:"shippedUnits" binding:"required,gt=0"`
}

// CreateShipmentRequest defines the data needed to create a shipment.
type CreateShipmentRequest struct {
	ReferenceNo     string                `json:"referenceNo" binding:"required"`
	Date            time.Time             `json:"date" binding:"required"`
	CustomerID      string                `json:"customerID" binding:"required"`
	ContainerID     *string               `json:"containerID"`
	ShippingCompany *string               `json:"shippingCompany"`
	Notes           *string               `json:"notes"`
	Items           []ShipmentItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ShipmentItemResponse defines the data returned for a shipment line.
type ShipmentItemResponse struct {
	ShipmentItemID  string `json:"shipmentItemID"`
	ReceivingItemID string `json:"receivingItemID"`
	ItemName        string `json:"itemName"`
	ShippedUnits    int64  `json:"shippedUnits"`
}

// ShipmentResponse defines the data returned for a shipment.
type ShipmentResponse struct {
	ShipmentID      string                 `json:"shipmentID"`
	ReferenceNo     string                 `json:"referenceNo"`
	Date            time.Time              `json:"date"`
	CustomerID      string                 `json:"customerID"`
	CustomerName    string                 `json:"customerName"`
	ContainerID     *string                `json:"containerID,omitempty"`
	ContainerNo     *string                `json:"containerNo,omitempty"`
	ShippingCompany *string                `json:"shippingCompany,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	Items           []ShipmentItemResponse `json:"items"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy   string                 `json:"lastUpdatedBy"`
}

// ToShipmentItemResponse converts a domain.ShipmentItem to its response DTO.
func ToShipmentItemResponse(item *domain.ShipmentItem) ShipmentItemResponse {
	return ShipmentItemResponse{
		ShipmentItemID:  item.ShipmentItemID,
		ReceivingItemID: item.ReceivingItemID,
		ItemName:        item.ItemName,
		ShippedUnits:    item.ShippedUnits,
	}
}

// ToShipmentResponse converts a domain.Shipment to its response DTO.
func ToShipmentResponse(s *domain.Shipment) ShipmentResponse {
	items := make([]ShipmentItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = ToShipmentItemResponse(&item)
	}
	return ShipmentResponse{
		ShipmentID:      s.ShipmentID,
		ReferenceNo:     s.ReferenceNo,
		Date:            s.Date,
		CustomerID:      s.CustomerID,
		CustomerName:    s.CustomerName,
		ContainerID:     s.ContainerID,
		ContainerNo:     s.ContainerNo,
		ShippingCompany: s.ShippingCompany,
		Notes:           s.Notes,
		Items:           items,
		CreatedAt:       s.CreatedAt,
		CreatedBy:       s.CreatedBy,
		LastUpdatedAt:   s.LastUpdatedAt,
		LastUpdatedBy:   s.LastUpdatedBy,
	}
}

// ToListShipmentResponse converts a slice of domain.Shipment to response DTOs.
func ToListShipmentResponse(shipments []domain.Shipment) []ShipmentResponse {
	res := make([]ShipmentResponse, len(shipments))
	for i, s := range shipments {
		res[i] = ToShipmentResponse(&s)
	}
	return res
}
