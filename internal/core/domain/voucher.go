package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherKind discriminates the two cash-voucher documents.
type VoucherKind string

const (
	// Receipt records money coming into a treasury.
	Receipt VoucherKind = "RECEIPT"
	// Payment records money going out of a treasury.
	Payment VoucherKind = "PAYMENT"
)

// LedgerSign returns the sign a voucher of this kind applies to its treasury
// balance: +1 for receipts, -1 for payments.
func (k VoucherKind) LedgerSign() decimal.Decimal {
	if k == Payment {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// Voucher is a receipt or payment document that credits or debits a treasury.
//
// The ledger arithmetic operates purely on Amount; Currency, ExchangeRate and
// CostPrice are stored for display and reporting but never converted into the
// treasury balance.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	Kind          VoucherKind     `json:"kind"`
	VoucherNumber string          `json:"voucherNumber"`
	Date          time.Time       `json:"date"`
	TreasuryID    string          `json:"treasuryID"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	CostPrice     *decimal.Decimal `json:"costPrice,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Notes         *string         `json:"notes,omitempty"`

	// ReceivedFrom is set on receipts, PaidTo on payments.
	ReceivedFrom *string `json:"receivedFrom,omitempty"`
	PaidTo       *string `json:"paidTo,omitempty"`

	// Optional references for display joins.
	ShipmentID        *string `json:"shipmentID,omitempty"`
	CustomerID        *string `json:"customerID,omitempty"`
	SupplierID        *string `json:"supplierID,omitempty"`
	ExpenseCategoryID *string `json:"expenseCategoryID,omitempty"`

	// Joined display fields, populated by list/get queries.
	TreasuryName        string  `json:"treasuryName,omitempty"`
	ExpenseCategoryName *string `json:"expenseCategoryName,omitempty"`

	AuditFields
}

// LedgerDelta is the signed amount this voucher contributes to its treasury
// balance while it exists.
func (v Voucher) LedgerDelta() decimal.Decimal {
	return v.Amount.Mul(v.Kind.LedgerSign())
}
