package domain

// Currency represents a currency vouchers may be denominated in. The treasury
// ledger itself is single-currency; this is display master data.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "EGP"
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
	AuditFields
}
