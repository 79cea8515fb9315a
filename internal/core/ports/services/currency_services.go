package services

import (
	"context"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
	"github.com/ratewise/currency_rates_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by its id.
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// GetCurrencyByAbbreviation retrieves a specific currency by its short code.
	GetCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency updates an existing currency.
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	// DeleteCurrency removes a currency together with its rates.
	DeleteCurrency(ctx context.Context, currencyID int64) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
