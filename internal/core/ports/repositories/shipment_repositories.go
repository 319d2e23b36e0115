package repositories

import (
	"context"
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ShipmentReader defines read operations for shipment data
type ShipmentReader interface {
	// FindShipmentByID retrieves a shipment and its items.
	FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error)

	// ListShipments retrieves a paginated list of shipments ordered by date descending.
	ListShipments(ctx context.Context, limit int, offset int) ([]domain.Shipment, error)

	// FindShipmentItemsByShipmentID retrieves the items of a shipment with their resolved item names.
	FindShipmentItemsByShipmentID(ctx context.Context, shipmentID string) ([]domain.ShipmentItem, error)
}

// ShipmentWriter defines write operations for shipment data. Each write carries
// its inventory effect so document and stock commit in one transaction.
type ShipmentWriter interface {
	// SaveShipment persists a shipment with its items and applies the given stock
	// decrements atomically. When enforceStock is true a line that would drive an
	// item balance negative fails the whole transaction.
	SaveShipment(ctx context.Context, shipment domain.Shipment, decrements []domain.InventoryAdjustment, enforceStock bool) error

	// DeleteShipment removes a shipment and its items, applying the given reversal
	// adjustments atomically.
	DeleteShipment(ctx context.Context, shipmentID string, reversals []domain.InventoryAdjustment, userID string, now time.Time) error
}

// ShipmentRepositoryFacade combines all shipment-related repository interfaces
// This is a facade for clients that need access to all operations
type ShipmentRepositoryFacade interface {
	ShipmentReader
	ShipmentWriter
}

// ShipmentRepositoryWithTx extends ShipmentRepositoryFacade with transaction capabilities
type ShipmentRepositoryWithTx interface {
	ShipmentRepositoryFacade
	TransactionManager
}
