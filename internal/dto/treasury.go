package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTreasuryRequest defines the data needed to create a new treasury.
type CreateTreasuryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTreasuryRequest defines the data allowed for renaming a treasury.
// Balance is never writable; it only moves through vouchers.
type UpdateTreasuryRequest struct {
	Name *string `json:"name"`
}

// TreasuryResponse defines the data returned for a treasury.
type TreasuryResponse struct {
	TreasuryID    string          `json:"treasuryID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToTreasuryResponse converts a domain.Treasury to TreasuryResponse DTO.
func ToTreasuryResponse(t *domain.Treasury) TreasuryResponse {
	return TreasuryResponse{
		TreasuryID:    t.TreasuryID,
		Name:          t.Name,
		Balance:       t.Balance,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTreasuryResponse converts a slice of domain.Treasury to response DTOs.
func ToListTreasuryResponse(treasuries []domain.Treasury) []TreasuryResponse {
	res := make([]TreasuryResponse, len(treasuries))
	for i, t := range treasuries {
		res[i] = ToTreasuryResponse(&t)
	}
	return res
}

// ListTreasuriesResponse wraps the list of treasuries.
type ListTreasuriesResponse struct {
	Treasuries []TreasuryResponse `json:"treasuries"`
}
