package domain

import "github.com/shopspring/decimal"

// CashFlowSummary aggregates voucher totals over a period.
type CashFlowSummary struct {
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Net      decimal.Decimal `json:"net"`
}

// ExpenseSummaryRow is the payment total for one expense category.
type ExpenseSummaryRow struct {
	CategoryID   *string         `json:"categoryID"`
	CategoryName *string         `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// TreasuryMovement pairs the vouchers touching treasuries over a period.
type TreasuryMovement struct {
	Receipts []Voucher `json:"receipts"`
	Payments []Voucher `json:"payments"`
}
