package domain

import "github.com/shopspring/decimal"

// Treasury is a named cash account with a running balance.
//
// Balance is a derived cache, never recomputed from history: it is adjusted
// incrementally, in the same database transaction as the voucher mutation that
// caused the adjustment. It equals the sum of all non-deleted receipt amounts
// minus all non-deleted payment amounts referencing the treasury. Overdraft is
// a legitimate state, so the balance is never clamped at zero.
type Treasury struct {
	TreasuryID string          `json:"treasuryID"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	AuditFields
}
