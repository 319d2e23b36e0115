package domain

// ExpenseCategory classifies payment vouchers for expense reporting.
type ExpenseCategory struct {
	CategoryID string  `json:"categoryID"`
	Name       string  `json:"name"`
	Notes      *string `json:"notes,omitempty"`
	AuditFields
}
