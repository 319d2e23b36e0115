package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// CurrencySvcFacade defines operations for currency master data.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by its ISO code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all registered currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// CreateCurrency registers a currency, updating it if the code exists.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error)
}
