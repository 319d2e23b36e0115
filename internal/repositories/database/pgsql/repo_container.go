package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	treasuryRepo := newPgxTreasuryRepository(dbPool)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool, treasuryRepo)
	receivingRepo := newPgxReceivingRepository(dbPool, inventoryRepo)
	shipmentRepo := newPgxShipmentRepository(dbPool, inventoryRepo)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	containerRepo := newPgxContainerRepository(dbPool)
	expenseCategoryRepo := newPgxExpenseCategoryRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TreasuryRepo:        treasuryRepo,
		VoucherRepo:         voucherRepo,
		InventoryRepo:       inventoryRepo,
		ReceivingRepo:       receivingRepo,
		ShipmentRepo:        shipmentRepo,
		PurchaseRepo:        purchaseRepo,
		CustomerRepo:        customerRepo,
		SupplierRepo:        supplierRepo,
		ContainerRepo:       containerRepo,
		ExpenseCategoryRepo: expenseCategoryRepo,
		CurrencyRepo:        currencyRepo,
		UserRepo:            userRepo,
		ReportingRepo:       reportingRepo,
	}
}
