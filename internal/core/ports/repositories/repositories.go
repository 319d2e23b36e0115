package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TreasuryRepo        TreasuryRepositoryFacade
	VoucherRepo         VoucherRepositoryFacade
	InventoryRepo       InventoryRepositoryFacade
	ReceivingRepo       ReceivingRepositoryFacade
	ShipmentRepo        ShipmentRepositoryFacade
	PurchaseRepo        PurchaseRepositoryFacade
	CustomerRepo        CustomerRepositoryFacade
	SupplierRepo        SupplierRepositoryFacade
	ContainerRepo       ContainerRepositoryFacade
	ExpenseCategoryRepo ExpenseCategoryRepositoryFacade
	CurrencyRepo        CurrencyRepositoryFacade
	UserRepo            UserRepositoryFacade
	ReportingRepo       ReportingRepository
}
