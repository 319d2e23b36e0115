package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRangeParams defines the date range query parameters shared by reports.
type ReportRangeParams struct {
	From       time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To         time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	TreasuryID *string   `form:"treasuryID"`
}

// TreasuryMovementParams defines the query parameters for the treasury
// movement report, which always targets one treasury.
type TreasuryMovementParams struct {
	TreasuryID string    `form:"treasuryID" binding:"required"`
	From       time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To         time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// CashFlowSummaryResponse defines the cash flow report payload.
type CashFlowSummaryResponse struct {
	From     time.Time       `json:"from"`
	To       time.Time       `json:"to"`
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Net      decimal.Decimal `json:"net"`
}

// ToCashFlowSummaryResponse converts a domain.CashFlowSummary to its response DTO.
func ToCashFlowSummaryResponse(s *domain.CashFlowSummary, from, to time.Time) CashFlowSummaryResponse {
	return CashFlowSummaryResponse{
		From:     from,
		To:       to,
		TotalIn:  s.TotalIn,
		TotalOut: s.TotalOut,
		Net:      s.Net,
	}
}

// ExpenseSummaryRowResponse defines one row of the expense summary report.
type ExpenseSummaryRowResponse struct {
	CategoryID   *string         `json:"categoryID,omitempty"`
	CategoryName *string         `json:"categoryName,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

// ExpenseSummaryResponse defines the expense summary report payload.
type ExpenseSummaryResponse struct {
	From       time.Time                   `json:"from"`
	To         time.Time                   `json:"to"`
	Categories []ExpenseSummaryRowResponse `json:"categories"`
	Total      decimal.Decimal             `json:"total"`
}

// ToExpenseSummaryResponse converts expense summary rows to the report DTO.
func ToExpenseSummaryResponse(rows []domain.ExpenseSummaryRow, from, to time.Time) ExpenseSummaryResponse {
	categories := make([]ExpenseSummaryRowResponse, len(rows))
	total := decimal.Zero
	for i, row := range rows {
		categories[i] = ExpenseSummaryRowResponse{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        row.Total,
		}
		total = total.Add(row.Total)
	}
	return ExpenseSummaryResponse{
		From:       from,
		To:         to,
		Categories: categories,
		Total:      total,
	}
}

// TreasuryMovementResponse defines the treasury movement report payload.
type TreasuryMovementResponse struct {
	TreasuryID string            `json:"treasuryID"`
	From       time.Time         `json:"from"`
	To         time.Time         `json:"to"`
	Receipts   []VoucherResponse `json:"receipts"`
	Payments   []VoucherResponse `json:"payments"`
}

// ToTreasuryMovementResponse converts a domain.TreasuryMovement to its response DTO.
func ToTreasuryMovementResponse(m *domain.TreasuryMovement, treasuryID string, from, to time.Time) TreasuryMovementResponse {
	return TreasuryMovementResponse{
		TreasuryID: treasuryID,
		From:       from,
		To:         to,
		Receipts:   ToListVoucherResponse(m.Receipts),
		Payments:   ToListVoucherResponse(m.Payments),
	}
}
