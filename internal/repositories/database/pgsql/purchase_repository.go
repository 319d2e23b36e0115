package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	"github.com/nileport/trading_erp/internal/models"
	"github.com/nileport/trading_erp/internal/utils/mapping"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase invoice data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryWithTx
var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

const purchaseItemColumns = `purchase_item_id, invoice_id, item_name, item_code, barcode, qty_cartons, qty_units, price, total, category, description`

func (r *PgxPurchaseRepository) insertPurchaseItemsInTx(ctx context.Context, tx pgx.Tx, invoiceID string, items []domain.PurchaseItem) error {
	itemQuery := `
		INSERT INTO purchase_items (` + purchaseItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(itemQuery,
			item.PurchaseItemID,
			invoiceID,
			item.ItemName,
			item.ItemCode,
			item.Barcode,
			item.QtyCartons,
			item.QtyUnits,
			item.Price,
			item.Total,
			item.Category,
			item.Description,
		)
	}
	if batch.Len() == 0 {
		return nil
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert purchase items for invoice %s: %w", invoiceID, err)
	}
	return nil
}

// SavePurchaseInvoice inserts an invoice and its items in one transaction.
func (r *PgxPurchaseRepository) SavePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO purchase_invoices (invoice_id, invoice_number, reference_no, invoice_date, supplier_id, notes, container_no, down_payment, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, headerQuery,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.ReferenceNo,
		invoice.Date,
		invoice.SupplierID,
		invoice.Notes,
		invoice.ContainerNo,
		invoice.DownPayment,
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
				return fmt.Errorf("%w: purchase invoice number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
			case "23503":
				return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, invoice.SupplierID)
			}
		}
		return fmt.Errorf("failed to insert purchase invoice %s: %w", invoice.InvoiceID, err)
	}

	if err := r.insertPurchaseItemsInTx(ctx, tx, invoice.InvoiceID, invoice.Items); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdatePurchaseInvoice replaces an invoice's header and items in one
// transaction. Items that already have receiving lines block the replace with a
// conflict.
func (r *PgxPurchaseRepository) UpdatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		UPDATE purchase_invoices
		SET invoice_number = $2, reference_no = $3, invoice_date = $4, supplier_id = $5,
		    notes = $6, container_no = $7, down_payment = $8, last_updated_at = $9, last_updated_by = $10
		WHERE invoice_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		invoice.InvoiceID,
		invoice.InvoiceNumber,
		invoice.ReferenceNo,
		invoice.Date,
		invoice.SupplierID,
		invoice.Notes,
		invoice.ContainerNo,
		invoice.DownPayment,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: purchase invoice number %s already exists", apperrors.ErrDuplicate, invoice.InvoiceNumber)
			case "23503":
				return fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, invoice.SupplierID)
			}
		}
		return fmt.Errorf("failed to update purchase invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: purchase invoice %s has received items", apperrors.ErrConflict, invoice.InvoiceID)
		}
		return fmt.Errorf("failed to replace purchase items for invoice %s: %w", invoice.InvoiceID, err)
	}

	if err := r.insertPurchaseItemsInTx(ctx, tx, invoice.InvoiceID, invoice.Items); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeletePurchaseInvoice removes an invoice and its items. Receiving invoices
// referencing it block the delete with a conflict.
func (r *PgxPurchaseRepository) DeletePurchaseInvoice(ctx context.Context, invoiceID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: purchase invoice %s has received items", apperrors.ErrConflict, invoiceID)
		}
		return fmt.Errorf("failed to delete purchase items for invoice %s: %w", invoiceID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM purchase_invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: purchase invoice %s has receiving invoices", apperrors.ErrConflict, invoiceID)
		}
		return fmt.Errorf("failed to delete purchase invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindPurchaseInvoiceByID retrieves a purchase invoice and its items.
func (r *PgxPurchaseRepository) FindPurchaseInvoiceByID(ctx context.Context, invoiceID string) (*domain.PurchaseInvoice, error) {
	query := `
		SELECT p.invoice_id, p.invoice_number, p.reference_no, p.invoice_date, p.supplier_id, s.name,
		       p.notes, p.container_no, p.down_payment,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM purchase_invoices p
		JOIN suppliers s ON p.supplier_id = s.supplier_id
		WHERE p.invoice_id = $1;
	`
	var m models.PurchaseInvoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.ReferenceNo,
		&m.InvoiceDate,
		&m.SupplierID,
		&m.SupplierName,
		&m.Notes,
		&m.ContainerNo,
		&m.DownPayment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase invoice by ID %s: %w", invoiceID, err)
	}

	d := mapping.ToDomainPurchaseInvoice(m)
	items, err := r.FindPurchaseItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	d.Items = items
	return &d, nil
}

// ListPurchaseInvoices retrieves a paginated list of purchase invoices ordered by date descending.
func (r *PgxPurchaseRepository) ListPurchaseInvoices(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT p.invoice_id, p.invoice_number, p.reference_no, p.invoice_date, p.supplier_id, s.name,
		       p.notes, p.container_no, p.down_payment,
		       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM purchase_invoices p
		JOIN suppliers s ON p.supplier_id = s.supplier_id
		ORDER BY p.invoice_date DESC, p.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.PurchaseInvoice{}
	for rows.Next() {
		var m models.PurchaseInvoice
		if err := rows.Scan(
			&m.InvoiceID,
			&m.InvoiceNumber,
			&m.ReferenceNo,
			&m.InvoiceDate,
			&m.SupplierID,
			&m.SupplierName,
			&m.Notes,
			&m.ContainerNo,
			&m.DownPayment,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainPurchaseInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase invoice rows: %w", err)
	}

	return invoices, nil
}

func scanPurchaseItem(row pgx.Row) (models.PurchaseItem, error) {
	var m models.PurchaseItem
	err := row.Scan(
		&m.PurchaseItemID,
		&m.InvoiceID,
		&m.ItemName,
		&m.ItemCode,
		&m.Barcode,
		&m.QtyCartons,
		&m.QtyUnits,
		&m.Price,
		&m.Total,
		&m.Category,
		&m.Description,
	)
	return m, err
}

// FindPurchaseItemsByInvoiceID retrieves the items of a purchase invoice.
func (r *PgxPurchaseRepository) FindPurchaseItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.PurchaseItem, error) {
	query := `SELECT ` + purchaseItemColumns + ` FROM purchase_items WHERE invoice_id = $1 ORDER BY item_name;`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	items := []domain.PurchaseItem{}
	for rows.Next() {
		m, scanErr := scanPurchaseItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan purchase item row for invoice %s: %w", invoiceID, scanErr)
		}
		items = append(items, mapping.ToDomainPurchaseItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase item rows for invoice %s: %w", invoiceID, err)
	}

	return items, nil
}

// FindPurchaseItemsByIDs retrieves purchase items by their IDs, keyed by ID.
func (r *PgxPurchaseRepository) FindPurchaseItemsByIDs(ctx context.Context, purchaseItemIDs []string) (map[string]domain.PurchaseItem, error) {
	if len(purchaseItemIDs) == 0 {
		return map[string]domain.PurchaseItem{}, nil
	}

	query := `SELECT ` + purchaseItemColumns + ` FROM purchase_items WHERE purchase_item_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, purchaseItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items by IDs: %w", err)
	}
	defer rows.Close()

	itemsMap := make(map[string]domain.PurchaseItem)
	for rows.Next() {
		m, scanErr := scanPurchaseItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan purchase item row during batch fetch: %w", scanErr)
		}
		itemsMap[m.PurchaseItemID] = mapping.ToDomainPurchaseItem(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase item rows during batch fetch: %w", err)
	}

	return itemsMap, nil
}
