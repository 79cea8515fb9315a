package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/dto"
	"github.com/shopspring/decimal"
)

// RateService provides business logic for currency rates.
type RateService struct {
	rateRepo        portsrepo.RateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) *RateService {
	return &RateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

// CreateRate handles the creation of a new rate. The owning currency is
// resolved first; nothing is persisted when it does not exist.
func (s *RateService) CreateRate(ctx context.Context, req dto.CreateRateRequest) (*domain.Rate, error) {
	if req.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate value must be positive", apperrors.ErrValidation)
	}
	if req.EffectiveDate.IsZero() {
		return nil, fmt.Errorf("%w: effective date is required", apperrors.ErrValidation)
	}

	_, err := s.currencyService.GetCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d not found", apperrors.ErrNotFound, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to validate currency %d: %w", req.CurrencyID, err)
	}

	now := time.Now()
	rate := domain.Rate{
		CurrencyID:    req.CurrencyID,
		Value:         req.Value,
		EffectiveDate: req.EffectiveDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.rateRepo.SaveRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate in service: %w", err)
	}

	return created, nil
}

// GetRateByID retrieves a rate by its id.
func (s *RateService) GetRateByID(ctx context.Context, rateID int64) (*domain.Rate, error) {
	rate, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate by id in service: %w", err)
	}
	return rate, nil
}

// ListRates retrieves all rates.
func (s *RateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates in service: %w", err)
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}

// ListRatesByCurrencyID retrieves all rates of a currency, newest first.
func (s *RateService) ListRatesByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListRatesByCurrencyID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for currency %d in service: %w", currencyID, err)
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}

// UpdateRate updates the value and effective date of an existing rate. The
// owning currency cannot be changed.
func (s *RateService) UpdateRate(ctx context.Context, rateID int64, req dto.UpdateRateRequest) (*domain.Rate, error) {
	if req.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate value must be positive", apperrors.ErrValidation)
	}
	if req.EffectiveDate.IsZero() {
		return nil, fmt.Errorf("%w: effective date is required", apperrors.ErrValidation)
	}

	existing, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find rate %d for update: %w", rateID, err)
	}

	existing.Value = req.Value
	existing.EffectiveDate = req.EffectiveDate
	existing.LastUpdatedAt = time.Now()

	if err := s.rateRepo.UpdateRate(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update rate %d in service: %w", rateID, err)
	}

	return existing, nil
}

// DeleteRate removes a rate.
func (s *RateService) DeleteRate(ctx context.Context, rateID int64) error {
	if err := s.rateRepo.DeleteRate(ctx, rateID); err != nil {
		return fmt.Errorf("failed to delete rate %d in service: %w", rateID, err)
	}
	return nil
}

// GetRatesByAbbreviationAndDate retrieves the rates of the currency with the
// given abbreviation carrying the exact effective date. Unknown abbreviations
// and dates without rates both yield an empty slice, not an error.
func (s *RateService) GetRatesByAbbreviationAndDate(ctx context.Context, abbreviation string, date time.Time) ([]domain.Rate, error) {
	currency, err := s.currencyService.GetCurrencyByAbbreviation(ctx, abbreviation)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Rate{}, nil
		}
		return nil, fmt.Errorf("failed to resolve currency %q: %w", abbreviation, err)
	}

	rates, err := s.rateRepo.FindRatesByCurrencyAndDate(ctx, currency.CurrencyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find rates for %q on %s: %w", abbreviation, date.Format("2006-01-02"), err)
	}
	if rates == nil {
		return []domain.Rate{}, nil
	}
	return rates, nil
}

// GetBulkRates retrieves the latest rate for each known abbreviation. Unknown
// abbreviations and currencies without rates are silently skipped; the order
// of the input is not guaranteed to be preserved in the result.
func (s *RateService) GetBulkRates(ctx context.Context, abbreviations []string) ([]domain.Rate, error) {
	rates := make([]domain.Rate, 0, len(abbreviations))
	for _, abbreviation := range abbreviations {
		currency, err := s.currencyService.GetCurrencyByAbbreviation(ctx, abbreviation)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve currency %q: %w", abbreviation, err)
		}

		rate, err := s.rateRepo.FindLatestRateByCurrencyID(ctx, currency.CurrencyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find latest rate for %q: %w", abbreviation, err)
		}
		rates = append(rates, *rate)
	}
	return rates, nil
}
