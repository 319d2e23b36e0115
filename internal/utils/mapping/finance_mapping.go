package mapping

import (
	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/models"
)

// ToModelTreasury converts a domain treasury to its DB model.
func ToModelTreasury(d domain.Treasury) models.Treasury {
	return models.Treasury{
		TreasuryID:  d.TreasuryID,
		Name:        d.Name,
		Balance:     d.Balance,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// ToDomainTreasury converts a treasury DB model to its domain form.
func ToDomainTreasury(m models.Treasury) domain.Treasury {
	return domain.Treasury{
		TreasuryID:  m.TreasuryID,
		Name:        m.Name,
		Balance:     m.Balance,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTreasurySlice converts a slice of treasury models.
func ToDomainTreasurySlice(ms []models.Treasury) []domain.Treasury {
	ds := make([]domain.Treasury, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTreasury(m)
	}
	return ds
}

// ToModelVoucher converts a domain voucher to its DB model. ReceivedFrom and
// PaidTo collapse into the single counterparty column.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	counterparty := d.ReceivedFrom
	if d.Kind == domain.Payment {
		counterparty = d.PaidTo
	}
	return models.Voucher{
		VoucherID:         d.VoucherID,
		VoucherType:       models.VoucherKind(d.Kind),
		VoucherNumber:     d.VoucherNumber,
		VoucherDate:       d.Date,
		TreasuryID:        d.TreasuryID,
		Amount:            d.Amount,
		Currency:          d.Currency,
		ExchangeRate:      d.ExchangeRate,
		CostPrice:         d.CostPrice,
		Description:       d.Description,
		Notes:             d.Notes,
		Counterparty:      counterparty,
		ShipmentID:        d.ShipmentID,
		CustomerID:        d.CustomerID,
		SupplierID:        d.SupplierID,
		ExpenseCategoryID: d.ExpenseCategoryID,
		AuditFields:       toModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a voucher DB model to its domain form.
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	d := domain.Voucher{
		VoucherID:           m.VoucherID,
		Kind:                domain.VoucherKind(m.VoucherType),
		VoucherNumber:       m.VoucherNumber,
		Date:                m.VoucherDate,
		TreasuryID:          m.TreasuryID,
		Amount:              m.Amount,
		Currency:            m.Currency,
		ExchangeRate:        m.ExchangeRate,
		CostPrice:           m.CostPrice,
		Description:         m.Description,
		Notes:               m.Notes,
		ShipmentID:          m.ShipmentID,
		CustomerID:          m.CustomerID,
		SupplierID:          m.SupplierID,
		ExpenseCategoryID:   m.ExpenseCategoryID,
		TreasuryName:        m.TreasuryName,
		ExpenseCategoryName: m.ExpenseCategoryName,
		AuditFields:         toDomainAuditFields(m.AuditFields),
	}
	if d.Kind == domain.Payment {
		d.PaidTo = m.Counterparty
	} else {
		d.ReceivedFrom = m.Counterparty
	}
	return d
}

// ToDomainVoucherSlice converts a slice of voucher models.
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
