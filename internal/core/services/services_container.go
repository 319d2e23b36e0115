package services

import (
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Treasury = NewTreasuryService(repos.TreasuryRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.TreasuryRepo, cfg.BaseCurrency)
	container.Inventory = NewInventoryService(repos.InventoryRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo)
	container.Receiving = NewReceivingService(repos.ReceivingRepo, repos.PurchaseRepo)
	container.Shipment = NewShipmentService(repos.ShipmentRepo, repos.ReceivingRepo, repos.CustomerRepo, !cfg.AllowNegativeStock)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Container = NewContainerService(repos.ContainerRepo)
	container.ExpenseCategory = NewExpenseCategoryService(repos.ExpenseCategoryRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.TreasuryRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TreasurySvcFacade  = (*treasuryService)(nil)
	_ portssvc.VoucherSvcFacade   = (*voucherService)(nil)
	_ portssvc.ReceivingSvcFacade = (*receivingService)(nil)
	_ portssvc.ShipmentSvcFacade  = (*shipmentService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
)
