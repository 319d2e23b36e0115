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

type PgxReceivingRepository struct {
	BaseRepository
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// newPgxReceivingRepository creates a new repository for receiving invoice data.
func newPgxReceivingRepository(pool *pgxpool.Pool, inventoryRepo portsrepo.InventoryRepositoryFacade) portsrepo.ReceivingRepositoryWithTx {
	return &PgxReceivingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		inventoryRepo:  inventoryRepo,
	}
}

// Ensure PgxReceivingRepository implements portsrepo.ReceivingRepositoryWithTx
var _ portsrepo.ReceivingRepositoryWithTx = (*PgxReceivingRepository)(nil)

// SaveReceivingInvoice inserts an invoice with its items and applies the given
// inventory adjustments, all within a single DB transaction.
func (r *PgxReceivingRepository) SaveReceivingInvoice(ctx context.Context, invoice domain.ReceivingInvoice, adjustments []domain.InventoryAdjustment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := invoice.CreatedAt
	userID := invoice.CreatedBy

	headerQuery := `
		INSERT INTO receiving_invoices (invoice_id, invoice_number, invoice_date, purchase_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, headerQuery,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.Date,
		invoice.PurchaseID,
		invoice.Notes,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: receiving invoice number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
			case "23503":
				return fmt.Errorf("%w: purchase invoice %s does not exist", apperrors.ErrValidation, invoice.PurchaseID)
			}
		}
		return fmt.Errorf("failed to insert receiving invoice %s: %w", invoice.InvoiceID, err)
	}

	itemQuery := `
		INSERT INTO receiving_items (receiving_item_id, invoice_id, purchase_item_id, received_units, damaged_units, notes)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, item := range invoice.Items {
		batch.Queue(itemQuery,
			item.ReceivingItemID,
			invoice.InvoiceID,
			item.PurchaseItemID,
			item.ReceivedUnits,
			item.DamagedUnits,
			item.Notes,
		)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return fmt.Errorf("%w: receiving item references an unknown purchase item", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to insert receiving items for invoice %s: %w", invoice.InvoiceID, err)
		}
	}

	for _, adj := range adjustments {
		if err := r.inventoryRepo.UpsertInventoryAdjustmentInTx(ctx, tx, adj, userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteReceivingInvoice removes an invoice with its items and reverses their
// inventory effect, all within a single DB transaction.
func (r *PgxReceivingRepository) DeleteReceivingInvoice(ctx context.Context, invoiceID string, reversals []domain.InventoryAdjustment, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM receiving_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: receiving invoice %s has shipped items", apperrors.ErrConflict, invoiceID)
		}
		return fmt.Errorf("failed to delete receiving items for invoice %s: %w", invoiceID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM receiving_invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete receiving invoice %s: %w", invoiceID, err)
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

// FindReceivingInvoiceByID retrieves a receiving invoice and its items.
func (r *PgxReceivingRepository) FindReceivingInvoiceByID(ctx context.Context, invoiceID string) (*domain.ReceivingInvoice, error) {
	query := `
		SELECT invoice_id, invoice_number, invoice_date, purchase_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM receiving_invoices
		WHERE invoice_id = $1;
	`
	var m models.ReceivingInvoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.InvoiceDate,
		&m.PurchaseID,
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
		return nil, fmt.Errorf("failed to find receiving invoice by ID %s: %w", invoiceID, err)
	}

	d := mapping.ToDomainReceivingInvoice(m)
	items, err := r.FindReceivingItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

// ListReceivingInvoices retrieves a paginated list of receiving invoices ordered by date descending.
func (r *PgxReceivingRepository) ListReceivingInvoices(ctx context.Context, limit int, offset int) ([]domain.ReceivingInvoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT invoice_id, invoice_number, invoice_date, purchase_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM receiving_invoices
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query receiving invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.ReceivingInvoice{}
	for rows.Next() {
		var m models.ReceivingInvoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.InvoiceNumber,
			&m.InvoiceDate,
			&m.PurchaseID,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan receiving invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainReceivingInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receiving invoice rows: %w", err)
	}

	return invoices, nil
}

// FindReceivingItemByID retrieves one receiving item with its purchase line
// details resolved.
func (r *PgxReceivingRepository) FindReceivingItemByID(ctx context.Context, receivingItemID string) (*domain.ReceivingItem, error) {
	query := `
		SELECT ri.receiving_item_id, ri.invoice_id, ri.purchase_item_id, ri.received_units, ri.damaged_units, ri.notes,
		       pi.item_name, pi.barcode
		FROM receiving_items ri
		JOIN purchase_items pi ON ri.purchase_item_id = pi.purchase_item_id
		WHERE ri.receiving_item_id = $1;
	`
	var m models.ReceivingItem
	err := r.Pool.QueryRow(ctx, query, receivingItemID).Scan(
		&m.ReceivingItemID,
		&m.InvoiceID,
		&m.PurchaseItemID,
		&m.ReceivedUnits,
		&m.DamagedUnits,
		&m.Notes,
		&m.ItemName,
		&m.Barcode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receiving item by ID %s: %w", receivingItemID, err)
	}

	d := mapping.ToDomainReceivingItem(m)
	return &d, nil
}

// FindReceivingItemsByInvoiceID retrieves the items of a receiving invoice with
// their purchase line details resolved.
func (r *PgxReceivingRepository) FindReceivingItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.ReceivingItem, error) {
	query := `
		SELECT ri.receiving_item_id, ri.invoice_id, ri.purchase_item_id, ri.received_units, ri.damaged_units, ri.notes,
		       pi.item_name, pi.barcode
		FROM receiving_items ri
		JOIN purchase_items pi ON ri.purchase_item_id = pi.purchase_item_id
		WHERE ri.invoice_id = $1
		ORDER BY pi.item_name;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receiving items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	items := []domain.ReceivingItem{}
	for rows.Next() {
		var m models.ReceivingItem
		if err := rows.Scan(
			&m.ReceivingItemID,
			&m.InvoiceID,
			&m.PurchaseItemID,
			&m.ReceivedUnits,
			&m.DamagedUnits,
			&m.Notes,
			&m.ItemName,
			&m.Barcode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan receiving item row for invoice %s: %w", invoiceID, err)
		}
		items = append(items, mapping.ToDomainReceivingItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receiving item rows for invoice %s: %w", invoiceID, err)
	}

	return items, nil
}
