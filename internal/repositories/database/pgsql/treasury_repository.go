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
	"github.com/shopspring/decimal"
)

type PgxTreasuryRepository struct {
	pool *pgxpool.Pool
}

// newPgxTreasuryRepository creates a new repository for treasury data.
func newPgxTreasuryRepository(pool *pgxpool.Pool) portsrepo.TreasuryRepositoryFacade {
	return &PgxTreasuryRepository{pool: pool}
}

// Ensure PgxTreasuryRepository implements portsrepo.TreasuryRepositoryFacade
var _ portsrepo.TreasuryRepositoryFacade = (*PgxTreasuryRepository)(nil)

// SaveTreasury inserts a new treasury.
func (r *PgxTreasuryRepository) SaveTreasury(ctx context.Context, treasury domain.Treasury) error {
	m := mapping.ToModelTreasury(treasury)

	query := `
		INSERT INTO treasuries (treasury_id, name, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TreasuryID,
		m.Name,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: treasury with name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save treasury %s: %w", m.TreasuryID, err)
	}
	return nil
}

// FindTreasuryByID retrieves a treasury by its ID.
func (r *PgxTreasuryRepository) FindTreasuryByID(ctx context.Context, treasuryID string) (*domain.Treasury, error) {
	query := `
		SELECT treasury_id, name, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM treasuries
		WHERE treasury_id = $1;
	`
	var m models.Treasury
	err := r.pool.QueryRow(ctx, query, treasuryID).Scan(
		&m.TreasuryID,
		&m.Name,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find treasury by ID %s: %w", treasuryID, err)
	}

	d := mapping.ToDomainTreasury(m)
	return &d, nil
}

// ListTreasuries retrieves all treasuries, newest first.
func (r *PgxTreasuryRepository) ListTreasuries(ctx context.Context) ([]domain.Treasury, error) {
	query := `
		SELECT treasury_id, name, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM treasuries
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query treasuries: %w", err)
	}
	defer rows.Close()

	treasuries := []models.Treasury{}
	for rows.Next() {
		var m models.Treasury
		if err := rows.Scan(
			&m.TreasuryID,
			&m.Name,
			&m.Balance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan treasury row: %w", err)
		}
		treasuries = append(treasuries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treasury rows: %w", err)
	}

	return mapping.ToDomainTreasurySlice(treasuries), nil
}

// UpdateTreasury updates a treasury's name. Balance is never set directly, only
// adjusted through voucher transactions.
func (r *PgxTreasuryRepository) UpdateTreasury(ctx context.Context, treasury domain.Treasury) error {
	m := mapping.ToModelTreasury(treasury)

	query := `
		UPDATE treasuries
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE treasury_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.TreasuryID,
		m.Name,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: treasury with name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to execute update treasury %s: %w", m.TreasuryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTreasury removes a treasury. A foreign key violation from referencing
// vouchers surfaces as ErrConflict.
func (r *PgxTreasuryRepository) DeleteTreasury(ctx context.Context, treasuryID string) error {
	query := `DELETE FROM treasuries WHERE treasury_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, treasuryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: treasury %s still has vouchers", apperrors.ErrConflict, treasuryID)
		}
		return fmt.Errorf("failed to delete treasury %s: %w", treasuryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTreasuryByIDForUpdate retrieves a treasury by ID and locks the row for update.
// Must be called within a transaction.
func (r *PgxTreasuryRepository) FindTreasuryByIDForUpdate(ctx context.Context, tx pgx.Tx, treasuryID string) (*domain.Treasury, error) {
	query := `
		SELECT treasury_id, name, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM treasuries
		WHERE treasury_id = $1
		FOR UPDATE;
	`
	var m models.Treasury
	err := tx.QueryRow(ctx, query, treasuryID).Scan(
		&m.TreasuryID,
		&m.Name,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: treasury %s", apperrors.ErrNotFound, treasuryID)
		}
		return nil, fmt.Errorf("failed to lock treasury %s: %w", treasuryID, err)
	}

	d := mapping.ToDomainTreasury(m)
	return &d, nil
}

// AdjustTreasuryBalanceInTx applies a signed delta to a treasury balance within a transaction.
func (r *PgxTreasuryRepository) AdjustTreasuryBalanceInTx(ctx context.Context, tx pgx.Tx, treasuryID string, delta decimal.Decimal, userID string, now time.Time) error {
	if delta.IsZero() {
		return nil
	}

	query := `
		UPDATE treasuries
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE treasury_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, treasuryID, delta, now, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for treasury %s: %w", treasuryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: treasury %s not found during balance adjustment", apperrors.ErrNotFound, treasuryID)
	}
	return nil
}
