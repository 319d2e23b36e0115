package mapping

import (
	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/models"
)

// ToDomainCustomer converts a customer model.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Phone:       m.Phone,
		Address:     m.Address,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplier converts a supplier model.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		Phone:       m.Phone,
		Address:     m.Address,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContainer converts a container model.
func ToDomainContainer(m models.Container) domain.Container {
	return domain.Container{
		ContainerID: m.ContainerID,
		ContainerNo: m.ContainerNo,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseCategory converts an expense category model.
func ToDomainExpenseCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Notes:       m.Notes,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToModelCurrency converts a domain currency to its DB model.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Precision:    d.Precision,
		AuditFields:  toModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a currency model.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Precision:    m.Precision,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of currency models.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
