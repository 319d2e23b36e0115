package repositories

import (
	"context"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// ContainerReader defines read operations for container data
type ContainerReader interface {
	// FindContainerByID retrieves a specific container by its unique identifier.
	FindContainerByID(ctx context.Context, containerID string) (*domain.Container, error)

	// ListContainers retrieves all containers ordered by container number.
	ListContainers(ctx context.Context) ([]domain.Container, error)
}

// ContainerWriter defines write operations for container data
type ContainerWriter interface {
	// SaveContainer persists a new container.
	SaveContainer(ctx context.Context, container domain.Container) error

	// UpdateContainer updates an existing container's details.
	UpdateContainer(ctx context.Context, container domain.Container) error

	// DeleteContainer removes a container.
	DeleteContainer(ctx context.Context, containerID string) error
}

// ContainerRepositoryFacade combines all container-related repository interfaces
type ContainerRepositoryFacade interface {
	ContainerReader
	ContainerWriter
}

// ExpenseCategoryReader defines read operations for expense category data
type ExpenseCategoryReader interface {
	// FindExpenseCategoryByID retrieves a specific expense category by its unique identifier.
	FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)

	// ListExpenseCategories retrieves all expense categories ordered by name.
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
}

// ExpenseCategoryWriter defines write operations for expense category data
type ExpenseCategoryWriter interface {
	// SaveExpenseCategory persists a new expense category.
	SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error

	// UpdateExpenseCategory updates an existing expense category's details.
	UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error

	// DeleteExpenseCategory removes an expense category.
	DeleteExpenseCategory(ctx context.Context, categoryID string) error
}

// ExpenseCategoryRepositoryFacade combines all expense-category repository interfaces
type ExpenseCategoryRepositoryFacade interface {
	ExpenseCategoryReader
	ExpenseCategoryWriter
}
