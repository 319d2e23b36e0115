package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/nileport/trading_erp/internal/middleware"
)

// pageSlice applies limit/offset pagination to an in-memory list. The master
// data tables are small enough that the repositories return them whole.
func pageSlice[T any](items []T, params dto.ListParams) []T {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer master data service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, params dto.ListParams) ([]domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		logger.Error("Failed to list customers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return pageSlice(customers, params), nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdatePartnerRequest, userID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.Notes != nil {
		customer.Notes = req.Notes
	}
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, err
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return err
	}

	logger.Info("Customer deleted successfully", slog.String("customer_id", customerID))
	return nil
}

type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new supplier master data service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find supplier in repository", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, params dto.ListParams) ([]domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		logger.Error("Failed to list suppliers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return pageSlice(suppliers, params), nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier in repository", slog.String("error", err.Error()), slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	logger.Info("Supplier created successfully", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdatePartnerRequest, userID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.Address != nil {
		supplier.Address = req.Address
	}
	if req.Notes != nil {
		supplier.Notes = req.Notes
	}
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = userID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier in repository", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete supplier in repository", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return err
	}

	logger.Info("Supplier deleted successfully", slog.String("supplier_id", supplierID))
	return nil
}

type containerService struct {
	containerRepo portsrepo.ContainerRepositoryFacade
}

// NewContainerService creates a new container master data service.
func NewContainerService(containerRepo portsrepo.ContainerRepositoryFacade) portssvc.ContainerSvcFacade {
	return &containerService{containerRepo: containerRepo}
}

func (s *containerService) GetContainerByID(ctx context.Context, containerID string) (*domain.Container, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	container, err := s.containerRepo.FindContainerByID(ctx, containerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find container in repository", slog.String("error", err.Error()), slog.String("container_id", containerID))
		}
		return nil, err
	}
	return container, nil
}

func (s *containerService) ListContainers(ctx context.Context, params dto.ListParams) ([]domain.Container, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	containers, err := s.containerRepo.ListContainers(ctx)
	if err != nil {
		logger.Error("Failed to list containers from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return pageSlice(containers, params), nil
}

func (s *containerService) CreateContainer(ctx context.Context, req dto.CreateContainerRequest, userID string) (*domain.Container, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	container := domain.Container{
		ContainerID: uuid.NewString(),
		ContainerNo: req.ContainerNo,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.containerRepo.SaveContainer(ctx, container); err != nil {
		logger.Error("Failed to save container in repository", slog.String("error", err.Error()), slog.String("container_id", container.ContainerID))
		return nil, err
	}

	logger.Info("Container created successfully", slog.String("container_id", container.ContainerID))
	return &container, nil
}

func (s *containerService) UpdateContainer(ctx context.Context, containerID string, req dto.UpdateContainerRequest, userID string) (*domain.Container, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	container, err := s.containerRepo.FindContainerByID(ctx, containerID)
	if err != nil {
		return nil, err
	}

	if req.ContainerNo != nil {
		container.ContainerNo = *req.ContainerNo
	}
	if req.Notes != nil {
		container.Notes = req.Notes
	}
	container.LastUpdatedAt = time.Now()
	container.LastUpdatedBy = userID

	if err := s.containerRepo.UpdateContainer(ctx, *container); err != nil {
		logger.Error("Failed to update container in repository", slog.String("error", err.Error()), slog.String("container_id", containerID))
		return nil, err
	}

	return container, nil
}

func (s *containerService) DeleteContainer(ctx context.Context, containerID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.containerRepo.DeleteContainer(ctx, containerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete container in repository", slog.String("error", err.Error()), slog.String("container_id", containerID))
		}
		return err
	}

	logger.Info("Container deleted successfully", slog.String("container_id", containerID))
	return nil
}

type expenseCategoryService struct {
	categoryRepo portsrepo.ExpenseCategoryRepositoryFacade
}

// NewExpenseCategoryService creates a new expense category master data service.
func NewExpenseCategoryService(categoryRepo portsrepo.ExpenseCategoryRepositoryFacade) portssvc.ExpenseCategorySvcFacade {
	return &expenseCategoryService{categoryRepo: categoryRepo}
}

func (s *expenseCategoryService) GetExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	category, err := s.categoryRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find expense category in repository", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *expenseCategoryService) ListExpenseCategories(ctx context.Context, params dto.ListParams) ([]domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	categories, err := s.categoryRepo.ListExpenseCategories(ctx)
	if err != nil {
		logger.Error("Failed to list expense categories from repository", slog.String("error", err.Error()))
		return nil, err
	}
	return pageSlice(categories, params), nil
}

func (s *expenseCategoryService) CreateExpenseCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	category := domain.ExpenseCategory{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveExpenseCategory(ctx, category); err != nil {
		logger.Error("Failed to save expense category in repository", slog.String("error", err.Error()), slog.String("category_id", category.CategoryID))
		return nil, err
	}

	logger.Info("Expense category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *expenseCategoryService) UpdateExpenseCategory(ctx context.Context, categoryID string, req dto.UpdateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindExpenseCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Notes != nil {
		category.Notes = req.Notes
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateExpenseCategory(ctx, *category); err != nil {
		logger.Error("Failed to update expense category in repository", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, err
	}

	return category, nil
}

func (s *expenseCategoryService) DeleteExpenseCategory(ctx context.Context, categoryID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.categoryRepo.DeleteExpenseCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete expense category in repository", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return err
	}

	logger.Info("Expense category deleted successfully", slog.String("category_id", categoryID))
	return nil
}
