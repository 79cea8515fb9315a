package repositories

import (
	"context"
	"time"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
)

// RateReader defines read operations for rate data
type RateReader interface {
	// FindRateByID retrieves a specific rate by its id.
	FindRateByID(ctx context.Context, rateID int64) (*domain.Rate, error)

	// ListRates retrieves all rates.
	ListRates(ctx context.Context) ([]domain.Rate, error)

	// ListRatesByCurrencyID retrieves all rates belonging to a currency,
	// newest effective date first.
	ListRatesByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Rate, error)

	// FindRatesByCurrencyAndDate retrieves the rates of a currency with the
	// given effective date. An empty slice is returned when nothing matches.
	FindRatesByCurrencyAndDate(ctx context.Context, currencyID int64, date time.Time) ([]domain.Rate, error)

	// FindLatestRateByCurrencyID retrieves the applicable rate for a currency:
	// greatest effective date, ties broken by greatest rate id.
	FindLatestRateByCurrencyID(ctx context.Context, currencyID int64) (*domain.Rate, error)
}

// RateWriter defines write operations for rate data
type RateWriter interface {
	// SaveRate persists a new rate and returns it with its generated id.
	SaveRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error)

	// UpdateRate persists changes to an existing rate.
	UpdateRate(ctx context.Context, rate domain.Rate) error

	// DeleteRate removes a rate.
	DeleteRate(ctx context.Context, rateID int64) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
// This is a facade for clients that need access to all operations
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
