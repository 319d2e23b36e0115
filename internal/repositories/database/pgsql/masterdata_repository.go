package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nileport/trading_erp/internal/apperrors"
	"github.com/nileport/trading_erp/internal/core/domain"
	portsrepo "github.com/nileport/trading_erp/internal/core/ports/repositories"
	"github.com/nileport/trading_erp/internal/models"
	"github.com/nileport/trading_erp/internal/utils/mapping"
)

type PgxContainerRepository struct {
	pool *pgxpool.Pool
}

// newPgxContainerRepository creates a new repository for container data.
func newPgxContainerRepository(pool *pgxpool.Pool) portsrepo.ContainerRepositoryFacade {
	return &PgxContainerRepository{pool: pool}
}

var _ portsrepo.ContainerRepositoryFacade = (*PgxContainerRepository)(nil)

// SaveContainer inserts a new container.
func (r *PgxContainerRepository) SaveContainer(ctx context.Context, container domain.Container) error {
	query := `
		INSERT INTO containers (container_id, container_no, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		container.ContainerID,
		container.ContainerNo,
		container.Notes,
		container.CreatedAt,
		container.CreatedBy,
		container.LastUpdatedAt,
		container.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: container %s already exists", apperrors.ErrDuplicate, container.ContainerNo)
		}
		return fmt.Errorf("failed to save container %s: %w", container.ContainerID, err)
	}
	return nil
}

// FindContainerByID retrieves a container by its ID.
func (r *PgxContainerRepository) FindContainerByID(ctx context.Context, containerID string) (*domain.Container, error) {
	query := `
		SELECT container_id, container_no, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM containers
		WHERE container_id = $1;
	`
	var m models.Container
	err := r.pool.QueryRow(ctx, query, containerID).Scan(
		&m.ContainerID,
		&m.ContainerNo,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find container by ID %s: %w", containerID, err)
	}

	d := mapping.ToDomainContainer(m)
	return &d, nil
}

// ListContainers retrieves all containers ordered by container number.
func (r *PgxContainerRepository) ListContainers(ctx context.Context) ([]domain.Container, error) {
	query := `
		SELECT container_id, container_no, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM containers
		ORDER BY container_no;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query containers: %w", err)
	}
	defer rows.Close()

	containers := []domain.Container{}
	for rows.Next() {
		var m models.Container
		if err := rows.Scan(
			&m.ContainerID,
			&m.ContainerNo,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan container row: %w", err)
		}
		containers = append(containers, mapping.ToDomainContainer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating container rows: %w", err)
	}

	return containers, nil
}

// UpdateContainer updates an existing container's details.
func (r *PgxContainerRepository) UpdateContainer(ctx context.Context, container domain.Container) error {
	query := `
		UPDATE containers
		SET container_no = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE container_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		container.ContainerID,
		container.ContainerNo,
		container.Notes,
		container.LastUpdatedAt,
		container.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: container %s already exists", apperrors.ErrDuplicate, container.ContainerNo)
		}
		return fmt.Errorf("failed to execute update container %s: %w", container.ContainerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteContainer removes a container. Shipments referencing it block the delete.
func (r *PgxContainerRepository) DeleteContainer(ctx context.Context, containerID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM containers WHERE container_id = $1;`, containerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: container %s is still referenced by shipments", apperrors.ErrConflict, containerID)
		}
		return fmt.Errorf("failed to delete container %s: %w", containerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxExpenseCategoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxExpenseCategoryRepository creates a new repository for expense category data.
func newPgxExpenseCategoryRepository(pool *pgxpool.Pool) portsrepo.ExpenseCategoryRepositoryFacade {
	return &PgxExpenseCategoryRepository{pool: pool}
}

var _ portsrepo.ExpenseCategoryRepositoryFacade = (*PgxExpenseCategoryRepository)(nil)

// SaveExpenseCategory inserts a new expense category.
func (r *PgxExpenseCategoryRepository) SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := `
		INSERT INTO expense_categories (category_id, name, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Notes,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: expense category %s already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save expense category %s: %w", category.CategoryID, err)
	}
	return nil
}

// FindExpenseCategoryByID retrieves an expense category by its ID.
func (r *PgxExpenseCategoryRepository) FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, name, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		WHERE category_id = $1;
	`
	var m models.ExpenseCategory
	err := r.pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.Name,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense category by ID %s: %w", categoryID, err)
	}

	d := mapping.ToDomainExpenseCategory(m)
	return &d, nil
}

// ListExpenseCategories retrieves all expense categories ordered by name.
func (r *PgxExpenseCategoryRepository) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	query := `
		SELECT category_id, name, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_categories
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var m models.ExpenseCategory
		if err := rows.Scan(
			&m.CategoryID,
			&m.Name,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainExpenseCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense category rows: %w", err)
	}

	return categories, nil
}

// UpdateExpenseCategory updates an existing expense category's details.
func (r *PgxExpenseCategoryRepository) UpdateExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := `
		UPDATE expense_categories
		SET name = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Notes,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: expense category %s already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to execute update expense category %s: %w", category.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpenseCategory removes an expense category. Vouchers referencing it block the delete.
func (r *PgxExpenseCategoryRepository) DeleteExpenseCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM expense_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: expense category %s is still referenced by vouchers", apperrors.ErrConflict, categoryID)
		}
		return fmt.Errorf("failed to delete expense category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
