package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Treasury mirrors the treasuries table.
type Treasury struct {
	TreasuryID string
	Name       string
	Balance    decimal.Decimal
	AuditFields
}

// VoucherKind discriminates rows of the vouchers table.
type VoucherKind string

const (
	VoucherReceipt VoucherKind = "RECEIPT"
	VoucherPayment VoucherKind = "PAYMENT"
)

// Voucher mirrors the vouchers table. Receipts and payments share the table,
// discriminated by VoucherType.
type Voucher struct {
	VoucherID     string
	VoucherType   VoucherKind
	VoucherNumber string
	VoucherDate   time.Time
	TreasuryID    string
	Amount        decimal.Decimal
	Currency      string
	ExchangeRate  decimal.Decimal
	CostPrice     *decimal.Decimal
	Description   *string
	Notes         *string
	Counterparty  *string // received_from on receipts, paid_to on payments

	ShipmentID        *string
	CustomerID        *string
	SupplierID        *string
	ExpenseCategoryID *string

	// Joined columns, not part of the table itself.
	TreasuryName        string
	ExpenseCategoryName *string

	AuditFields
}
