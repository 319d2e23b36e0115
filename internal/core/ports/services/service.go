package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Treasury        TreasurySvcFacade
	Voucher         VoucherSvcFacade
	Inventory       InventorySvcFacade
	Purchase        PurchaseSvcFacade
	Receiving       ReceivingSvcFacade
	Shipment        ShipmentSvcFacade
	Customer        CustomerSvcFacade
	Supplier        SupplierSvcFacade
	Container       ContainerSvcFacade
	ExpenseCategory ExpenseCategorySvcFacade
	Currency        CurrencySvcFacade
	User            UserSvcFacade
	Token           TokenSvcFacade
	Reporting       ReportingService
}
