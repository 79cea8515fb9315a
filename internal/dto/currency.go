package dto

import (
	"time"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Name         string `json:"name" form:"name" binding:"required,notblank"`
	Abbreviation string `json:"abbreviation" form:"abbreviation" binding:"required,uppercase,len=3"`
	Symbol       string `json:"symbol" form:"symbol" binding:"required,notblank"`
}

// UpdateCurrencyRequest defines the data accepted when updating a currency.
type UpdateCurrencyRequest struct {
	Name         string `json:"name" form:"name" binding:"required,notblank"`
	Abbreviation string `json:"abbreviation" form:"abbreviation" binding:"required,uppercase,len=3"`
	Symbol       string `json:"symbol" form:"symbol" binding:"required,notblank"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    int64     `json:"currencyID"`
	Name          string    `json:"name"`
	Abbreviation  string    `json:"abbreviation"`
	Symbol        string    `json:"symbol"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		Name:          curr.Name,
		Abbreviation:  curr.Abbreviation,
		Symbol:        curr.Symbol,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
