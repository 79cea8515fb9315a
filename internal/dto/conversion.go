package dto

import (
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionResponse defines the structure returned for a conversion.
type ConversionResponse struct {
	Result decimal.Decimal  `json:"result"`
	Amount decimal.Decimal  `json:"amount"`
	From   CurrencyResponse `json:"from"`
	To     CurrencyResponse `json:"to"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(res *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Result: res.Result,
		Amount: res.Amount,
		From:   ToCurrencyResponse(&res.From),
		To:     ToCurrencyResponse(&res.To),
	}
}
