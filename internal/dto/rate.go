package dto

import (
	"time"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateRequest defines the structure for creating a new rate.
// The owning currency must exist; the service resolves it before persisting.
type CreateRateRequest struct {
	CurrencyID    int64           `json:"currencyID" form:"currencyID" binding:"required"`
	Value         decimal.Decimal `json:"value" form:"value" binding:"required"`
	EffectiveDate time.Time       `json:"effectiveDate" form:"effectiveDate" time_format:"2006-01-02" binding:"required"`
}

// UpdateRateRequest defines the structure for updating a rate. The owning
// currency is fixed at creation and cannot be changed.
type UpdateRateRequest struct {
	Value         decimal.Decimal `json:"value" form:"value" binding:"required"`
	EffectiveDate time.Time       `json:"effectiveDate" form:"effectiveDate" time_format:"2006-01-02" binding:"required"`
}

// BulkRatesRequest carries the abbreviations to look up in one call.
type BulkRatesRequest struct {
	Abbreviations []string `json:"abbreviations" binding:"required,min=1,dive,uppercase,len=3"`
}

// RateResponse defines the structure for API responses containing rate details.
type RateResponse struct {
	RateID        int64           `json:"rateID"`
	CurrencyID    int64           `json:"currencyID"`
	Value         decimal.Decimal `json:"value"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(rate *domain.Rate) RateResponse {
	return RateResponse{
		RateID:        rate.RateID,
		CurrencyID:    rate.CurrencyID,
		Value:         rate.Value,
		EffectiveDate: rate.EffectiveDate,
		CreatedAt:     rate.CreatedAt,
		LastUpdatedAt: rate.LastUpdatedAt,
	}
}

// ToListRateResponse converts a slice of domain.Rate to a slice of RateResponse DTOs.
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToRateResponse(&rate)
	}
	return responses
}
