package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate stores a dated conversion rate for a currency, expressed relative to
// an implicit common base currency.
type Rate struct {
	RateID        int64           `json:"rateID"`     // Primary Key
	CurrencyID    int64           `json:"currencyID"` // FK -> Currency.currencyID
	Value         decimal.Decimal `json:"value"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	AuditFields
}
