package services

import (
	"context"

	"github.com/ratewise/currency_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade defines the currency conversion operation.
type ConversionSvcFacade interface {
	// Convert computes the equivalent of amount in the target currency using
	// the latest stored rates. It never mutates stored data.
	Convert(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*domain.ConversionResult, error)
}
