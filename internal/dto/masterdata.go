package dto

import (
	"time"

	"github.com/nileport/trading_erp/internal/core/domain"
)

// CreatePartnerRequest defines the data needed to create a customer or supplier.
type CreatePartnerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// UpdatePartnerRequest defines the data allowed for updating a customer or supplier.
type UpdatePartnerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string    `json:"customerID"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		Phone:         s.Phone,
		Address:       s.Address,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSupplierResponse converts a slice of domain.Supplier to response DTOs.
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}

// CreateContainerRequest defines the data needed to create a container.
type CreateContainerRequest struct {
	ContainerNo string  `json:"containerNo" binding:"required"`
	Notes       *string `json:"notes"`
}

// UpdateContainerRequest defines the data allowed for updating a container.
type UpdateContainerRequest struct {
	ContainerNo *string `json:"containerNo"`
	Notes       *string `json:"notes"`
}

// ContainerResponse defines the data returned for a container.
type ContainerResponse struct {
	ContainerID   string    `json:"containerID"`
	ContainerNo   string    `json:"containerNo"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToContainerResponse converts a domain.Container to its response DTO.
func ToContainerResponse(c *domain.Container) ContainerResponse {
	return ContainerResponse{
		ContainerID:   c.ContainerID,
		ContainerNo:   c.ContainerNo,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListContainerResponse converts a slice of domain.Container to response DTOs.
func ToListContainerResponse(containers []domain.Container) []ContainerResponse {
	res := make([]ContainerResponse, len(containers))
	for i, c := range containers {
		res[i] = ToContainerResponse(&c)
	}
	return res
}

// CreateExpenseCategoryRequest defines the data needed to create an expense category.
type CreateExpenseCategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Notes *string `json:"notes"`
}

// UpdateExpenseCategoryRequest defines the data allowed for updating an expense category.
type UpdateExpenseCategoryRequest struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
}

// ExpenseCategoryResponse defines the data returned for an expense category.
type ExpenseCategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Name          string    `json:"name"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToExpenseCategoryResponse converts a domain.ExpenseCategory to its response DTO.
func ToExpenseCategoryResponse(c *domain.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		CategoryID:    c.CategoryID,
		Name:          c.Name,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListExpenseCategoryResponse converts a slice of domain.ExpenseCategory to response DTOs.
func ToListExpenseCategoryResponse(categories []domain.ExpenseCategory) []ExpenseCategoryResponse {
	res := make([]ExpenseCategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToExpenseCategoryResponse(&c)
	}
	return res
}
