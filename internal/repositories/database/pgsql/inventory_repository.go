package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{pool: pool}
}

// Ensure PgxInventoryRepository implements portsrepo.InventoryRepositoryFacade
var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `item_id, item_name, barcode, total_received, total_shipped, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.ItemName,
		&m.Barcode,
		&m.TotalReceived,
		&m.TotalShipped,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindInventoryItemByID retrieves an inventory item by its ID.
func (r *PgxInventoryRepository) FindInventoryItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1;`

	m, err := scanInventoryItem(r.pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}

	d := mapping.ToDomainInventoryItem(m)
	return &d, nil
}

// FindInventoryItemByName retrieves an inventory item by its business key.
func (r *PgxInventoryRepository) FindInventoryItemByName(ctx context.Context, itemName string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_name = $1;`

	m, err := scanInventoryItem(r.pool.QueryRow(ctx, query, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by name %s: %w", itemName, err)
	}

	d := mapping.ToDomainInventoryItem(m)
	return &d, nil
}

// ListInventory retrieves inventory items, optionally filtered by a search term
// over name and barcode and by a low-stock threshold.
func (r *PgxInventoryRepository) ListInventory(ctx context.Context, search *string, lowStock *int64) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items`
	args := []interface{}{}
	filterClause := ``

	if search != nil && *search != "" {
		args = append(args, "%"+*search+"%")
		idx := strconv.Itoa(len(args))
		filterClause = ` WHERE (item_name ILIKE $` + idx + ` OR barcode ILIKE $` + idx + `)`
	}
	if lowStock != nil {
		args = append(args, *lowStock)
		if filterClause == "" {
			filterClause = ` WHERE balance <= $` + strconv.Itoa(len(args))
		} else {
			filterClause += ` AND balance <= $` + strconv.Itoa(len(args))
		}
	}

	query += filterClause + ` ORDER BY item_name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		m, scanErr := scanInventoryItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", scanErr)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}

	return mapping.ToDomainInventoryItemSlice(items), nil
}

// SaveInventoryItem registers an item ahead of any stock movement. Later
// receipts of the same name land on this row through the upsert path.
func (r *PgxInventoryRepository) SaveInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.ItemName,
		item.Barcode,
		item.TotalReceived,
		item.TotalShipped,
		item.Balance,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: inventory item %s already exists", apperrors.ErrDuplicate, item.ItemName)
		}
		return fmt.Errorf("failed to save inventory item %s: %w", item.ItemID, err)
	}
	return nil
}

// UpsertInventoryAdjustmentInTx applies an adjustment within a transaction. The
// first receipt of an item name creates the row; subsequent adjustments add to
// its counters. The conflict target takes the row lock, so callers do not need
// a separate FOR UPDATE pass.
func (r *PgxInventoryRepository) UpsertInventoryAdjustmentInTx(ctx context.Context, tx pgx.Tx, adj domain.InventoryAdjustment, userID string, now time.Time) error {
	query := `
		INSERT INTO inventory_items (item_id, item_name, barcode, total_received, total_shipped, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $7, $8)
		ON CONFLICT (item_name) DO UPDATE
		SET total_received  = inventory_items.total_received + EXCLUDED.total_received,
		    total_shipped   = inventory_items.total_shipped + EXCLUDED.total_shipped,
		    balance         = inventory_items.balance + EXCLUDED.balance,
		    barcode         = COALESCE(EXCLUDED.barcode, inventory_items.barcode),
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := tx.Exec(ctx, query,
		adj.ItemID,
		adj.ItemName,
		adj.Barcode,
		adj.ReceivedDelta,
		adj.ShippedDelta,
		adj.BalanceDelta(),
		now,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory adjustment for item %s: %w", adj.ItemName, err)
	}
	return nil
}

// DecrementInventoryInTx books a shipment decrement within a transaction. With
// enforceStock the update is conditional on enough balance remaining, and a
// zero-row result is disambiguated into not-found vs insufficient stock.
func (r *PgxInventoryRepository) DecrementInventoryInTx(ctx context.Context, tx pgx.Tx, itemName string, units int64, enforceStock bool, userID string, now time.Time) error {
	query := `
		UPDATE inventory_items
		SET total_shipped = total_shipped + $2, balance = balance - $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_name = $1
	`
	if enforceStock {
		query += ` AND balance >= $2`
	}
	query += `;`

	cmdTag, err := tx.Exec(ctx, query, itemName, units, now, userID)
	if err != nil {
		return fmt.Errorf("failed to decrement inventory for item %s: %w", itemName, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if !enforceStock {
			return fmt.Errorf("%w: inventory item %s", apperrors.ErrNotFound, itemName)
		}
		var balance int64
		err := tx.QueryRow(ctx, `SELECT balance FROM inventory_items WHERE item_name = $1 FOR UPDATE;`, itemName).Scan(&balance)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: inventory item %s", apperrors.ErrNotFound, itemName)
		}
		if err != nil {
			return fmt.Errorf("failed to check stock for item %s: %w", itemName, err)
		}
		return fmt.Errorf("%w: item %s has %d units, requested %d", apperrors.ErrInsufficientStock, itemName, balance, units)
	}
	return nil
}
