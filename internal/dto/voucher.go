package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the data needed to create a receipt or payment
// voucher. The voucher kind comes from the route, not the body. ReceivedFrom is
// only meaningful on receipts, PaidTo on payments.
type CreateVoucherRequest struct {
	VoucherNumber     string           `json:"voucherNumber" binding:"required"`
	Date              time.Time        `json:"date" binding:"required"`
	TreasuryID        string           `json:"treasuryID" binding:"required"`
	Amount            decimal.Decimal  `json:"amount" binding:"required"`
	Currency          *string          `json:"currency"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate"`
	CostPrice         *decimal.Decimal `json:"costPrice"`
	Description       *string          `json:"description"`
	Notes             *string          `json:"notes"`
	ReceivedFrom      *string          `json:"receivedFrom"`
	PaidTo            *string          `json:"paidTo"`
	ShipmentID        *string          `json:"shipmentID"`
	CustomerID        *string          `json:"customerID"`
	SupplierID        *string          `json:"supplierID"`
	ExpenseCategoryID *string          `json:"expenseCategoryID"`
}

// UpdateVoucherRequest defines the data allowed for updating a voucher.
// Pointers distinguish omitted fields from zero values.
type UpdateVoucherRequest struct {
	VoucherNumber     *string          `json:"voucherNumber"`
	Date              *time.Time       `json:"date"`
	TreasuryID        *string          `json:"treasuryID"`
	Amount            *decimal.Decimal `json:"amount"`
	Currency          *string          `json:"currency"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate"`
	CostPrice         *decimal.Decimal `json:"costPrice"`
	Description       *string          `json:"description"`
	Notes             *string          `json:"notes"`
	ReceivedFrom      *string          `json:"receivedFrom"`
	PaidTo            *string          `json:"paidTo"`
	ShipmentID        *string          `json:"shipmentID"`
	CustomerID        *string          `json:"customerID"`
	SupplierID        *string          `json:"supplierID"`
	ExpenseCategoryID *string          `json:"expenseCategoryID"`
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	TreasuryID *string    `form:"treasuryID"`
	DateFrom   *time.Time `form:"from" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int        `form:"limit,default=20"`
	NextToken  *string    `form:"nextToken"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID           string           `json:"voucherID"`
	Kind                string           `json:"kind"`
	VoucherNumber       string           `json:"voucherNumber"`
	Date                time.Time        `json:"date"`
	TreasuryID          string           `json:"treasuryID"`
	TreasuryName        string           `json:"treasuryName"`
	Amount              decimal.Decimal  `json:"amount"`
	Currency            string           `json:"currency"`
	ExchangeRate        decimal.Decimal  `json:"exchangeRate"`
	CostPrice           *decimal.Decimal `json:"costPrice,omitempty"`
	Description         *string          `json:"description,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
	ReceivedFrom        *string          `json:"receivedFrom,omitempty"`
	PaidTo              *string          `json:"paidTo,omitempty"`
	ShipmentID          *string          `json:"shipmentID,omitempty"`
	CustomerID          *string          `json:"customerID,omitempty"`
	SupplierID          *string          `json:"supplierID,omitempty"`
	ExpenseCategoryID   *string          `json:"expenseCategoryID,omitempty"`
	ExpenseCategoryName *string          `json:"expenseCategoryName,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	CreatedBy           string           `json:"createdBy"`
	LastUpdatedAt       time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy       string           `json:"lastUpdatedBy"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:           v.VoucherID,
		Kind:                string(v.Kind),
		VoucherNumber:       v.VoucherNumber,
		Date:                v.Date,
		TreasuryID:          v.TreasuryID,
		TreasuryName:        v.TreasuryName,
		Amount:              v.Amount,
		Currency:            v.Currency,
		ExchangeRate:        v.ExchangeRate,
		CostPrice:           v.CostPrice,
		Description:         v.Description,
		Notes:               v.Notes,
		ReceivedFrom:        v.ReceivedFrom,
		PaidTo:              v.PaidTo,
		ShipmentID:          v.ShipmentID,
		CustomerID:          v.CustomerID,
		SupplierID:          v.SupplierID,
		ExpenseCategoryID:   v.ExpenseCategoryID,
		ExpenseCategoryName: v.ExpenseCategoryName,
		CreatedAt:           v.CreatedAt,
		CreatedBy:           v.CreatedBy,
		LastUpdatedAt:       v.LastUpdatedAt,
		LastUpdatedBy:       v.LastUpdatedBy,
	}
}

// ToListVoucherResponse converts a slice of domain.Voucher to response DTOs.
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		res[i] = ToVoucherResponse(&v)
	}
	return res
}

// ListVouchersResponse wraps a page of vouchers with the cursor for the next page.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}
