package repositories

import (
	"context"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its id.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// FindCurrencyByAbbreviation retrieves a specific currency by its short code.
	FindCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency and returns it with its generated id.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// UpdateCurrency persists changes to an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency; associated rates are removed with it.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
