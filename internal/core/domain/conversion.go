package domain

import "github.com/shopspring/decimal"

// ConversionResult is the outcome of converting an amount between two
// currencies. It carries the resolved currencies so callers can present the
// full conversion without further lookups.
type ConversionResult struct {
	Result decimal.Decimal `json:"result"`
	Amount decimal.Decimal `json:"amount"`
	From   Currency        `json:"from"`
	To     Currency        `json:"to"`
}
