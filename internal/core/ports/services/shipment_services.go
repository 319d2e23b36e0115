package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// ShipmentReaderSvc defines read operations for shipments
type ShipmentReaderSvc interface {
	// GetShipmentByID retrieves a shipment with its items.
	GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)

	// ListShipments retrieves a paginated list of shipments.
	ListShipments(ctx context.Context, params dto.ListParams) ([]domain.Shipment, error)
}

// ShipmentWriterSvc defines write operations for shipments. Creating a shipment
// decrements inventory per line and deleting one restores the decrements, both
// atomically with the document write.
type ShipmentWriterSvc interface {
	// CreateShipment persists a shipment and applies its inventory decrements.
	// Under strict stock policy a line exceeding the item balance fails the
	// whole shipment.
	CreateShipment(ctx context.Context, req dto.CreateShipmentRequest, userID string) (*domain.Shipment, error)

	// DeleteShipment removes a shipment and restores its inventory decrements.
	DeleteShipment(ctx context.Context, shipmentID string, userID string) error
}

// ShipmentSvcFacade combines all shipment-related service interfaces
type ShipmentSvcFacade interface {
	ShipmentReaderSvc
	ShipmentWriterSvc
}
