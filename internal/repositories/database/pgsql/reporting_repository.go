package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	"github.com/nileport/trading_erp/internal/models"
	"github.com/nileport/trading_erp/internal/utils/mapping"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetCashFlowSummary retrieves total receipts, total payments and the net over
// a date range, optionally restricted to one treasury.
func (r *reportingRepository) GetCashFlowSummary(ctx context.Context, from, to time.Time, treasuryID *string) (*domain.CashFlowSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN voucher_type = 'RECEIPT' THEN amount ELSE 0 END), 0) AS total_in,
			COALESCE(SUM(CASE WHEN voucher_type = 'PAYMENT' THEN amount ELSE 0 END), 0) AS total_out
		FROM vouchers
		WHERE voucher_date BETWEEN $1 AND $2
			AND ($3::text IS NULL OR treasury_id = $3)
	`

	var summary domain.CashFlowSummary
	err := r.Pool.QueryRow(ctx, query, from, to, treasuryID).Scan(&summary.TotalIn, &summary.TotalOut)
	if err != nil {
		return nil, fmt.Errorf("error querying cash flow summary: %w", err)
	}

	summary.Net = summary.TotalIn.Sub(summary.TotalOut)
	return &summary, nil
}

// GetExpenseSummary retrieves payment totals grouped by expense category over a
// date range. Payments without a category fall into a single uncategorized row.
func (r *reportingRepository) GetExpenseSummary(ctx context.Context, from, to time.Time) ([]domain.ExpenseSummaryRow, error) {
	query := `
		SELECT
			v.expense_category_id,
			ec.name AS category_name,
			COALESCE(SUM(v.amount), 0) AS total
		FROM vouchers v
		LEFT JOIN expense_categories ec ON v.expense_category_id = ec.category_id
		WHERE v.voucher_type = 'PAYMENT'
			AND v.voucher_date BETWEEN $1 AND $2
		GROUP BY v.expense_category_id, ec.name
		ORDER BY total DESC
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expense summary: %w", err)
	}
	defer rows.Close()

	var result []domain.ExpenseSummaryRow
	for rows.Next() {
		var row domain.ExpenseSummaryRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning expense summary row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense summary rows: %w", err)
	}

	if result == nil {
		result = []domain.ExpenseSummaryRow{}
	}
	return result, nil
}

// GetTreasuryMovement retrieves the receipts and payments of one treasury over
// a date range, ordered by voucher date.
func (r *reportingRepository) GetTreasuryMovement(ctx context.Context, treasuryID string, from, to time.Time) (*domain.TreasuryMovement, error) {
	query := `SELECT ` + voucherColumns + voucherFrom + `
		WHERE v.treasury_id = $1 AND v.voucher_date BETWEEN $2 AND $3
		ORDER BY v.voucher_date, v.created_at;
	`

	rows, err := r.Pool.Query(ctx, query, treasuryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying treasury movement for %s: %w", treasuryID, err)
	}
	defer rows.Close()

	movement := domain.TreasuryMovement{
		Receipts: []domain.Voucher{},
		Payments: []domain.Voucher{},
	}
	for rows.Next() {
		m, scanErr := scanVoucher(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("error scanning treasury movement row for %s: %w", treasuryID, scanErr)
		}
		v := mapping.ToDomainVoucher(m)
		if m.VoucherType == models.VoucherPayment {
			movement.Payments = append(movement.Payments, v)
		} else {
			movement.Receipts = append(movement.Receipts, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treasury movement rows for %s: %w", treasuryID, err)
	}

	return &movement, nil
}
