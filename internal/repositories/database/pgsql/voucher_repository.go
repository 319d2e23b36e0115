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
	"github.com/nileport/trading_erp/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxVoucherRepository struct {
	BaseRepository
	treasuryRepo portsrepo.TreasuryRepositoryFacade
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool, treasuryRepo portsrepo.TreasuryRepositoryFacade) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
		treasuryRepo:   treasuryRepo,
	}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepositoryWithTx
var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

const voucherColumns = `
	v.voucher_id, v.voucher_type, v.voucher_number, v.voucher_date, v.treasury_id,
	v.amount, v.currency, v.exchange_rate, v.cost_price, v.description, v.notes, v.counterparty,
	v.shipment_id, v.customer_id, v.supplier_id, v.expense_category_id,
	t.name, ec.name,
	v.created_at, v.created_by, v.last_updated_at, v.last_updated_by`

const voucherFrom = `
	FROM vouchers v
	JOIN treasuries t ON v.treasury_id = t.treasury_id
	LEFT JOIN expense_categories ec ON v.expense_category_id = ec.category_id`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherType,
		&m.VoucherNumber,
		&m.VoucherDate,
		&m.TreasuryID,
		&m.Amount,
		&m.Currency,
		&m.ExchangeRate,
		&m.CostPrice,
		&m.Description,
		&m.Notes,
		&m.Counterparty,
		&m.ShipmentID,
		&m.CustomerID,
		&m.SupplierID,
		&m.ExpenseCategoryID,
		&m.TreasuryName,
		&m.ExpenseCategoryName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveVoucher inserts a voucher and applies its balance effect to the treasury
// within a single DB transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, treasuryDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	now := voucher.CreatedAt
	userID := voucher.CreatedBy

	// Lock the treasury first so concurrent vouchers serialize on it. Also
	// verifies the treasury exists before the insert.
	if _, err := r.treasuryRepo.FindTreasuryByIDForUpdate(ctx, tx, m.TreasuryID); err != nil {
		return err
	}

	query := `
		INSERT INTO vouchers (
			voucher_id, voucher_type, voucher_number, voucher_date, treasury_id,
			amount, currency, exchange_rate, cost_price, description, notes, counterparty,
			shipment_id, customer_id, supplier_id, expense_category_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, query,
		m.VoucherID,
		m.VoucherType,
		m.VoucherNumber,
		m.VoucherDate,
		m.TreasuryID,
		m.Amount,
		m.Currency,
		m.ExchangeRate,
		m.CostPrice,
		m.Description,
		m.Notes,
		m.Counterparty,
		m.ShipmentID,
		m.CustomerID,
		m.SupplierID,
		m.ExpenseCategoryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher number %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to insert voucher %s: %w", m.VoucherID, err)
	}

	if err := r.treasuryRepo.AdjustTreasuryBalanceInTx(ctx, tx, m.TreasuryID, treasuryDelta, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateVoucher rewrites a voucher row and rebalances treasuries in one
// transaction: reverseDelta undoes the stored effect on the old treasury,
// applyDelta applies the new effect on the voucher's current treasury. The two
// treasuries are the same row unless the voucher was reassigned.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher, oldTreasuryID string, reverseDelta, applyDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelVoucher(voucher)
	now := voucher.LastUpdatedAt
	userID := voucher.LastUpdatedBy

	// Lock in a stable order to avoid deadlocks between concurrent transfers.
	first, second := oldTreasuryID, m.TreasuryID
	if first > second {
		first, second = second, first
	}
	if _, err := r.treasuryRepo.FindTreasuryByIDForUpdate(ctx, tx, first); err != nil {
		return err
	}
	if second != first {
		if _, err := r.treasuryRepo.FindTreasuryByIDForUpdate(ctx, tx, second); err != nil {
			return err
		}
	}

	query := `
		UPDATE vouchers
		SET voucher_number = $3, voucher_date = $4, treasury_id = $5,
		    amount = $6, currency = $7, exchange_rate = $8, cost_price = $9,
		    description = $10, notes = $11, counterparty = $12,
		    shipment_id = $13, customer_id = $14, supplier_id = $15, expense_category_id = $16,
		    last_updated_at = $17, last_updated_by = $18
		WHERE voucher_id = $1 AND voucher_type = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.VoucherID,
		m.VoucherType,
		m.VoucherNumber,
		m.VoucherDate,
		m.TreasuryID,
		m.Amount,
		m.Currency,
		m.ExchangeRate,
		m.CostPrice,
		m.Description,
		m.Notes,
		m.Counterparty,
		m.ShipmentID,
		m.CustomerID,
		m.SupplierID,
		m.ExpenseCategoryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher number %s already exists", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to execute update voucher %s: %w", m.VoucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.treasuryRepo.AdjustTreasuryBalanceInTx(ctx, tx, oldTreasuryID, reverseDelta, userID, now); err != nil {
		return err
	}
	if err := r.treasuryRepo.AdjustTreasuryBalanceInTx(ctx, tx, m.TreasuryID, applyDelta, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteVoucher removes a voucher and reverses its balance effect on the
// treasury within a single DB transaction.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, kind domain.VoucherKind, voucherID string, treasuryID string, reversalDelta decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.treasuryRepo.FindTreasuryByIDForUpdate(ctx, tx, treasuryID); err != nil {
		return err
	}

	query := `DELETE FROM vouchers WHERE voucher_id = $1 AND voucher_type = $2;`
	cmdTag, err := tx.Exec(ctx, query, voucherID, models.VoucherKind(kind))
	if err != nil {
		return fmt.Errorf("failed to delete voucher %s: %w", voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.treasuryRepo.AdjustTreasuryBalanceInTx(ctx, tx, treasuryID, reversalDelta, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves a voucher of the given kind by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, kind domain.VoucherKind, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + voucherFrom + `
		WHERE v.voucher_id = $1 AND v.voucher_type = $2;
	`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID, models.VoucherKind(kind)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher by ID %s: %w", voucherID, err)
	}

	d := mapping.ToDomainVoucher(m)
	return &d, nil
}

// ListVouchers retrieves a paginated list of vouchers of one kind using token-based pagination.
// It returns the vouchers, a token for the next page, and an error.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, kind domain.VoucherKind, params portsrepo.ListVouchersParams) ([]domain.Voucher, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether a next page exists.
	fetchLimit := limit + 1

	filterClause := `WHERE v.voucher_type = $1`
	args := []interface{}{models.VoucherKind(kind)}

	if params.TreasuryID != nil {
		args = append(args, *params.TreasuryID)
		filterClause += ` AND v.treasury_id = $` + strconv.Itoa(len(args))
	}
	if params.DateFrom != nil {
		args = append(args, *params.DateFrom)
		filterClause += ` AND v.voucher_date >= $` + strconv.Itoa(len(args))
	}
	if params.DateTo != nil {
		args = append(args, *params.DateTo)
		filterClause += ` AND v.voucher_date <= $` + strconv.Itoa(len(args))
	}

	if params.NextToken != nil && *params.NextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*params.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		filterClause += ` AND (v.voucher_date, v.created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	orderByClause := `ORDER BY v.voucher_date DESC, v.created_at DESC`

	args = append(args, fetchLimit)
	query := `SELECT ` + voucherColumns + voucherFrom + `
		` + filterClause + `
		` + orderByClause + `
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query %s vouchers: %w", kind, err)
	}
	defer rows.Close()

	modelVouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanVoucher(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan voucher row: %w", scanErr)
		}
		modelVouchers = append(modelVouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating voucher rows: %w", err)
	}

	var nextTokenVal *string
	results := modelVouchers
	if len(modelVouchers) > limit {
		last := modelVouchers[limit-1]
		token := pagination.EncodeToken(last.VoucherDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelVouchers[:limit]
	}

	return mapping.ToDomainVoucherSlice(results), nextTokenVal, nil
}
