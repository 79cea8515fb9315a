package domain

// Currency represents a currency reference-data entry.
type Currency struct {
	CurrencyID   int64  `json:"currencyID"`   // Primary Key
	Name         string `json:"name"`         // e.g., "US Dollar"
	Abbreviation string `json:"abbreviation"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$"
	AuditFields
}
