package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// resultPrecision is the number of decimal places the conversion result is
// rounded to.
const resultPrecision = 10

// ConversionService computes amount conversions between currencies using
// their latest stored rates. All rates are expressed relative to the same
// implicit base currency.
type ConversionService struct {
	rateRepo        portsrepo.RateReader
	currencyService portssvc.CurrencyReaderSvc
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rateRepo portsrepo.RateReader, currencyService portssvc.CurrencyReaderSvc) *ConversionService {
	return &ConversionService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// Convert resolves both currencies and their applicable rates, then computes
// result = amount * rateTo / rateFrom. The applicable rate of a currency is
// the one with the greatest effective date, ties broken by greatest rate id.
// Results are rounded to resultPrecision decimal places unless both rates are
// equal, in which case the amount is returned unchanged. Conversion is
// read-only.
func (s *ConversionService) Convert(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*domain.ConversionResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}

	from, err := s.currencyService.GetCurrencyByID(ctx, fromID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'from' currency %d not found", apperrors.ErrNotFound, fromID)
		}
		return nil, fmt.Errorf("failed to resolve 'from' currency %d: %w", fromID, err)
	}

	to, err := s.currencyService.GetCurrencyByID(ctx, toID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: 'to' currency %d not found", apperrors.ErrNotFound, toID)
		}
		return nil, fmt.Errorf("failed to resolve 'to' currency %d: %w", toID, err)
	}

	fromRate, err := s.latestRate(ctx, from)
	if err != nil {
		return nil, err
	}
	toRate, err := s.latestRate(ctx, to)
	if err != nil {
		return nil, err
	}

	// Equal rates cancel out exactly; skipping the division keeps the
	// amount intact at any scale, including same-currency conversions.
	var result decimal.Decimal
	if fromRate.Value.Equal(toRate.Value) {
		result = amount
	} else {
		result = amount.Mul(toRate.Value).DivRound(fromRate.Value, resultPrecision)
	}

	return &domain.ConversionResult{
		Result: result,
		Amount: amount,
		From:   *from,
		To:     *to,
	}, nil
}

func (s *ConversionService) latestRate(ctx context.Context, currency *domain.Currency) (*domain.Rate, error) {
	rate, err := s.rateRepo.FindLatestRateByCurrencyID(ctx, currency.CurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s has no rates", apperrors.ErrNoRateAvailable, currency.Abbreviation)
		}
		return nil, fmt.Errorf("failed to find latest rate for %s: %w", currency.Abbreviation, err)
	}
	if rate.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: stored rate for %s is not positive", apperrors.ErrInvalidInput, currency.Abbreviation)
	}
	return rate, nil
}
