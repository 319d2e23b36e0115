package models

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string
	Name       string
	Phone      *string
	Address    *string
	Notes      *string
	AuditFields
}

// Supplier mirrors the suppliers table.
type Supplier struct {
	SupplierID string
	Name       string
	Phone      *string
	Address    *string
	Notes      *string
	AuditFields
}

// Container mirrors the containers table.
type Container struct {
	ContainerID string
	ContainerNo string
	Notes       *string
	AuditFields
}

// ExpenseCategory mirrors the expense_categories table.
type ExpenseCategory struct {
	CategoryID string
	Name       string
	Notes      *string
	AuditFields
}

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyCode string
	Symbol       string
	Name         string
	Precision    int
	AuditFields
}
