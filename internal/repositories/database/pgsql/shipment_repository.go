package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	"github.com/nileport/trading_erp/internal/models"
	"github.com/nileport/trading_erp/internal/utils/mapping"
)

type PgxShipmentRepository struct {
	BaseRepository
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// newPgxShipmentRepository creates a new repository for shipment data.
func newPgxShipmentRepository(pool *pgxpool.Pool, inventoryRepo portsrepo.InventoryRepositoryFacade) portsrepo.ShipmentRepositoryWithTx {
	return &PgxShipmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		inventoryRepo:  inventoryRepo,
	}
}

// Ensure PgxShipmentRepository implements portsrepo.ShipmentRepositoryWithTx
var _ portsrepo.ShipmentRepositoryWithTx = (*PgxShipmentRepository)(nil)

// SaveShipment inserts a shipment with its items and books the stock
// decrements, all within a single DB transaction. With enforceStock a line that
// would overdraw an item fails the whole transaction.
func (r *PgxShipmentRepository) SaveShipment(ctx context.Context, shipment domain.Shipment, decrements []domain.InventoryAdjustment, enforceStock bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := shipment.CreatedAt
	userID := shipment.CreatedBy

	headerQuery := `
		INSERT INTO shipments (shipment_id, reference_no, shipment_date, customer_id, container_id, shipping_company, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, headerQuery,
		shipment.ShipmentID,
		shipment.ReferenceNo,
		shipment.Date,
		shipment.CustomerID,
		shipment.ContainerID,
		shipment.ShippingCompany,
		shipment.Notes,
		shipment.CreatedAt,
		shipment.CreatedBy,
		shipment.LastUpdatedAt,
		shipment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: shipment reference %s already exists", apperrors.ErrDuplicate, shipment.ReferenceNo)
			case "23503":
				return fmt.Errorf("%w: shipment references an unknown customer or container", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to insert shipment %s: %w", shipment.ShipmentID, err)
	}

	itemQuery := `
		INSERT INTO shipment_items (shipment_item_id, shipment_id, receiving_item_id, shipped_units)
		VALUES ($1, $2, $3, $4);
	`
	batch := &pgx.Batch{}
	for _, item := range shipment.Items {
		batch.Queue(itemQuery,
			item.ShipmentItemID,
			shipment.ShipmentID,
			item.ReceivingItemID,
			item.ShippedUnits,
		)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return fmt.Errorf("%w: shipment item references an unknown receiving item", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to insert shipment items for shipment %s: %w", shipment.ShipmentID, err)
		}
	}

	for _, dec := range decrements {
		if err := r.inventoryRepo.DecrementInventoryInTx(ctx, tx, dec.ItemName, dec.ShippedDelta, enforceStock, userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteShipment removes a shipment with its items and restores the shipped
// units to inventory, all within a single DB transaction.
func (r *PgxShipmentRepository) DeleteShipment(ctx context.Context, shipmentID string, reversals []domain.InventoryAdjustment, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM shipment_items WHERE shipment_id = $1;`, shipmentID); err != nil {
		return fmt.Errorf("failed to delete shipment items for shipment %s: %w", shipmentID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM shipments WHERE shipment_id = $1;`, shipmentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: shipment %s still has vouchers", apperrors.ErrConflict, shipmentID)
		}
		return fmt.Errorf("failed to delete shipment %s: %w", shipmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	for _, adj := range reversals {
		if err := r.inventoryRepo.UpsertInventoryAdjustmentInTx(ctx, tx, adj, userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindShipmentByID retrieves a shipment and its items.
func (r *PgxShipmentRepository) FindShipmentByID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	query := `
		SELECT s.shipment_id, s.reference_no, s.shipment_date, s.customer_id, c.name,
		       s.container_id, ct.container_no, s.shipping_company, s.notes,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM shipments s
		JOIN customers c ON s.customer_id = c.customer_id
		LEFT JOIN containers ct ON s.container_id = ct.container_id
		WHERE s.shipment_id = $1;
	`
	var m models.Shipment
	err := r.Pool.QueryRow(ctx, query, shipmentID).Scan(
		&m.ShipmentID,
		&m.ReferenceNo,
		&m.ShipmentDate,
		&m.CustomerID,
		&m.CustomerName,
		&m.ContainerID,
		&m.ContainerNo,
		&m.ShippingCompany,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shipment by ID %s: %w", shipmentID, err)
	}

	d := mapping.ToDomainShipment(m)
	items, err := r.FindShipmentItemsByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

// ListShipments retrieves a paginated list of shipments ordered by date descending.
func (r *PgxShipmentRepository) ListShipments(ctx context.Context, limit int, offset int) ([]domain.Shipment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT s.shipment_id, s.reference_no, s.shipment_date, s.customer_id, c.name,
		       s.container_id, ct.container_no, s.shipping_company, s.notes,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM shipments s
		JOIN customers c ON s.customer_id = c.customer_id
		LEFT JOIN containers ct ON s.container_id = ct.container_id
		ORDER BY s.shipment_date DESC, s.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	shipments := []domain.Shipment{}
	for rows.Next() {
		var m models.Shipment
		if err := rows.Scan(
			&m.ShipmentID,
			&m.ReferenceNo,
			&m.ShipmentDate,
			&m.CustomerID,
			&m.CustomerName,
			&m.ContainerID,
			&m.ContainerNo,
			&m.ShippingCompany,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shipment row: %w", err)
		}
		shipments = append(shipments, mapping.ToDomainShipment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment rows: %w", err)
	}

	return shipments, nil
}

// FindShipmentItemsByShipmentID retrieves the items of a shipment with item
// names resolved through the receiving and purchase lines.
func (r *PgxShipmentRepository) FindShipmentItemsByShipmentID(ctx context.Context, shipmentID string) ([]domain.ShipmentItem, error) {
	query := `
		SELECT si.shipment_item_id, si.shipment_id, si.receiving_item_id, si.shipped_units, pi.item_name
		FROM shipment_items si
		JOIN receiving_items ri ON si.receiving_item_id = ri.receiving_item_id
		JOIN purchase_items pi ON ri.purchase_item_id = pi.purchase_item_id
		WHERE si.shipment_id = $1
		ORDER BY pi.item_name;
	`
	rows, err := r.Pool.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipment items for shipment %s: %w", shipmentID, err)
	}
	defer rows.Close()

	items := []domain.ShipmentItem{}
	for rows.Next() {
		var m models.ShipmentItem
		if err := rows.Scan(
			&m.ShipmentItemID,
			&m.ShipmentID,
			&m.ReceivingItemID,
			&m.ShippedUnits,
			&m.ItemName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shipment item row for shipment %s: %w", shipmentID, err)
		}
		items = append(items, mapping.ToDomainShipmentItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment item rows for shipment %s: %w", shipmentID, err)
	}

	return items, nil
}
