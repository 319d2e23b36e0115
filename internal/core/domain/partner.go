package domain

// Customer is a buyer of shipped goods.
type Customer struct {
	CustomerID string  `json:"customerID"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	AuditFields
}

// Supplier is a seller referenced by purchase invoices.
type Supplier struct {
	SupplierID string  `json:"supplierID"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	AuditFields
}
