package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portsrepo "github.com/ratewise/currency_rates_app/internal/core/ports/repositories"
	"github.com/ratewise/currency_rates_app/internal/dto"
)

// CurrencyService provides business logic for currency reference data.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency validates and persists a new currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := validateCurrencyFields(req.Name, req.Abbreviation, req.Symbol); err != nil {
		return nil, err
	}

	now := time.Now()
	currency := domain.Currency{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		Symbol:       req.Symbol,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return created, nil
}

// GetCurrencyByID retrieves a currency by its id.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}
	return currency, nil
}

// GetCurrencyByAbbreviation retrieves a currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	abbreviation = strings.ToUpper(abbreviation)
	if len(abbreviation) != 3 {
		return nil, fmt.Errorf("%w: currency abbreviation must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByAbbreviation(ctx, abbreviation)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by abbreviation in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// UpdateCurrency validates and persists changes to an existing currency.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	if err := validateCurrencyFields(req.Name, req.Abbreviation, req.Symbol); err != nil {
		return nil, err
	}

	existing, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency %d for update: %w", currencyID, err)
	}

	existing.Name = req.Name
	existing.Abbreviation = req.Abbreviation
	existing.Symbol = req.Symbol
	existing.LastUpdatedAt = time.Now()

	if err := s.currencyRepo.UpdateCurrency(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update currency %d in service: %w", currencyID, err)
	}

	return existing, nil
}

// DeleteCurrency removes a currency. Its rates are removed with it; orphaned
// rates must never remain queryable after the currency is gone.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID int64) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		return fmt.Errorf("failed to delete currency %d in service: %w", currencyID, err)
	}
	return nil
}

func validateCurrencyFields(name, abbreviation, symbol string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: currency name is required", apperrors.ErrValidation)
	}
	if len(abbreviation) != 3 || abbreviation != strings.ToUpper(abbreviation) {
		return fmt.Errorf("%w: currency abbreviation must be 3 uppercase letters", apperrors.ErrValidation)
	}
	if strings.TrimSpace(symbol) == "" {
		return fmt.Errorf("%w: currency symbol is required", apperrors.ErrValidation)
	}
	return nil
}
