package services

import (
	"context"
	"time"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
	"github.com/ratewise/currency_rates_app/internal/dto"
)

// RateReaderSvc defines read operations for rate data
type RateReaderSvc interface {
	// GetRateByID retrieves a specific rate by its id.
	GetRateByID(ctx context.Context, rateID int64) (*domain.Rate, error)

	// ListRates retrieves all rates.
	ListRates(ctx context.Context) ([]domain.Rate, error)

	// ListRatesByCurrencyID retrieves all rates of a currency, newest first.
	ListRatesByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Rate, error)

	// GetRatesByAbbreviationAndDate retrieves the rates of the currency with
	// the given abbreviation that carry the exact effective date. An empty
	// slice is returned when the currency is unknown or nothing matches.
	GetRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error)

	// GetBulkRates retrieves the latest rate for each known abbreviation,
	// silently skipping unknown ones.
	GetBulkRates(ctx context.Context, abbreviations []string) ([]domain.Rate, error)
}

// RateWriterSvc defines write operations for rate data
type RateWriterSvc interface {
	// CreateRate persists a new rate after resolving its owning currency.
	CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error)

	// UpdateRate updates the value and effective date of an existing rate.
	UpdateRate(ctx context.Context, rateID int64, req dto.UpdateRateRequest) (*domain.Rate, error)

	// DeleteRate removes a rate.
	DeleteRate(ctx context.Context, rateID int64) error
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
