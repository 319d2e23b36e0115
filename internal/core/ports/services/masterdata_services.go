package services

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
	"github.com/nileport/trading_erp/internal/dto"
)

// CustomerSvcFacade defines operations for customer master data.
type CustomerSvcFacade interface {
	// GetCustomerByID retrieves a customer by ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, params dto.ListParams) ([]domain.Customer, error)

	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdatePartnerRequest, userID string) (*domain.Customer, error)

	// DeleteCustomer removes a customer that no shipment references.
	DeleteCustomer(ctx context.Context, customerID string, userID string) error
}

// SupplierSvcFacade defines operations for supplier master data.
type SupplierSvcFacade interface {
	// GetSupplierByID retrieves a supplier by ID.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers.
	ListSuppliers(ctx context.Context, params dto.ListParams) ([]domain.Supplier, error)

	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Supplier, error)

	// UpdateSupplier updates an existing supplier.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdatePartnerRequest, userID string) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier that no purchase invoice references.
	DeleteSupplier(ctx context.Context, supplierID string, userID string) error
}

// ContainerSvcFacade defines operations for container master data.
type ContainerSvcFacade interface {
	// GetContainerByID retrieves a container by ID.
	GetContainerByID(ctx context.Context, containerID string) (*domain.Container, error)

	// ListContainers retrieves a paginated list of containers.
	ListContainers(ctx context.Context, params dto.ListParams) ([]domain.Container, error)

	// CreateContainer persists a new container.
	CreateContainer(ctx context.Context, req dto.CreateContainerRequest, userID string) (*domain.Container, error)

	// UpdateContainer updates an existing container.
	UpdateContainer(ctx context.Context, containerID string, req dto.UpdateContainerRequest, userID string) (*domain.Container, error)

	// DeleteContainer removes a container that no shipment references.
	DeleteContainer(ctx context.Context, containerID string, userID string) error
}

// ExpenseCategorySvcFacade defines operations for expense category master data.
type ExpenseCategorySvcFacade interface {
	// GetExpenseCategoryByID retrieves an expense category by ID.
	GetExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)

	// ListExpenseCategories retrieves a paginated list of expense categories.
	ListExpenseCategories(ctx context.Context, params dto.ListParams) ([]domain.ExpenseCategory, error)

	// CreateExpenseCategory persists a new expense category.
	CreateExpenseCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error)

	// UpdateExpenseCategory updates an existing expense category.
	UpdateExpenseCategory(ctx context.Context, categoryID string, req dto.UpdateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error)

	// DeleteExpenseCategory removes an expense category that no voucher references.
	DeleteExpenseCategory(ctx context.Context, categoryID string, userID string) error
}
