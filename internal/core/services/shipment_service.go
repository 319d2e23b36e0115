package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/nileport/trading_erp/internal/middleware"
)

type shipmentService struct {
	shipmentRepo  portsrepo.ShipmentRepositoryFacade
	receivingRepo portsrepo.ReceivingRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	enforceStock  bool
}

// NewShipmentService creates a new shipment service. enforceStock enables the
// strict stock policy where shipping more than the item balance fails.
func NewShipmentService(shipmentRepo portsrepo.ShipmentRepositoryFacade, receivingRepo portsrepo.ReceivingRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade, enforceStock bool) portssvc.ShipmentSvcFacade {
	return &shipmentService{
		shipmentRepo:  shipmentRepo,
		receivingRepo: receivingRepo,
		customerRepo:  customerRepo,
		enforceStock:  enforceStock,
	}
}

// CreateShipment persists the shipment and decrements the inventory counters of
// each shipped item in one transaction. Each line references a receiving item,
// whose purchase line resolves the inventory item name.
func (s *shipmentService) CreateShipment(ctx context.Context, req dto.CreateShipmentRequest, userID string) (*domain.Shipment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now()
	shipment := domain.Shipment{
		ShipmentID:      uuid.NewString(),
		ReferenceNo:     req.ReferenceNo,
		Date:            req.Date,
		CustomerID:      req.CustomerID,
		ContainerID:     req.ContainerID,
		ShippingCompany: req.ShippingCompany,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	shipment.Items = make([]domain.ShipmentItem, len(req.Items))
	decrements := make([]domain.InventoryAdjustment, len(req.Items))
	for i, item := range req.Items {
		itemName, err := s.resolveItemName(ctx, item.ReceivingItemID)
		if err != nil {
			return nil, err
		}

		shipment.Items[i] = domain.ShipmentItem{
			ShipmentItemID:  uuid.NewString(),
			ShipmentID:      shipment.ShipmentID,
			ReceivingItemID: item.ReceivingItemID,
			ShippedUnits:    item.ShippedUnits,
			ItemName:        itemName,
		}
		decrements[i] = domain.InventoryAdjustment{
			ItemName:     itemName,
			ShippedDelta: item.ShippedUnits,
		}
	}

	if err := s.shipmentRepo.SaveShipment(ctx, shipment, decrements, s.enforceStock); err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientStock) {
			logger.Error("Failed to save shipment in repository", slog.String("error", err.Error()), slog.String("shipment_id", shipment.ShipmentID))
		}
		return nil, err
	}

	logger.Info("Shipment created successfully", slog.String("shipment_id", shipment.ShipmentID), slog.Int("items", len(shipment.Items)))
	return s.shipmentRepo.FindShipmentByID(ctx, shipment.ShipmentID)
}

// resolveItemName walks receiving item -> purchase item to the inventory name.
func (s *shipmentService) resolveItemName(ctx context.Context, receivingItemID string) (string, error) {
	item, err := s.findReceivingItem(ctx, receivingItemID)
	if err != nil {
		return "", err
	}
	if item.ItemName == "" {
		return "", fmt.Errorf("%w: receiving item %s has no resolvable item name", apperrors.ErrValidation, receivingItemID)
	}
	return item.ItemName, nil
}

func (s *shipmentService) findReceivingItem(ctx context.Context, receivingItemID string) (*domain.ReceivingItem, error) {
	item, err := s.receivingRepo.FindReceivingItemByID(ctx, receivingItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: receiving item %s", apperrors.ErrNotFound, receivingItemID)
		}
		return nil, err
	}
	return item, nil
}

func (s *shipmentService) GetShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find shipment in repository", slog.String("error", err.Error()), slog.String("shipment_id", shipmentID))
		}
		return nil, err
	}
	return shipment, nil
}

func (s *shipmentService) ListShipments(ctx context.Context, params dto.ListParams) ([]domain.Shipment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	shipments, err := s.shipmentRepo.ListShipments(ctx, limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list shipments from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if shipments == nil {
		return []domain.Shipment{}, nil
	}
	return shipments, nil
}

// DeleteShipment removes the shipment and restores the inventory units it had
// decremented, in one transaction.
func (s *shipmentService) DeleteShipment(ctx context.Context, shipmentID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	shipment, err := s.shipmentRepo.FindShipmentByID(ctx, shipmentID)
	if err != nil {
		return err
	}

	reversals := make([]domain.InventoryAdjustment, len(shipment.Items))
	for i, item := range shipment.Items {
		reversals[i] = domain.InventoryAdjustment{
			ItemName:     item.ItemName,
			ShippedDelta: -item.ShippedUnits,
		}
	}

	if err := s.shipmentRepo.DeleteShipment(ctx, shipmentID, reversals, userID, time.Now()); err != nil {
		logger.Error("Failed to delete shipment in repository", slog.String("error", err.Error()), slog.String("shipment_id", shipmentID))
		return err
	}

	logger.Info("Shipment deleted successfully", slog.String("shipment_id", shipmentID))
	return nil
}
