package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nileport/trading_erp/internal/apperrors"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/nileport/trading_erp/internal/middleware"
)

// Master data handlers share the same shape: plain CRUD over small reference
// tables, with FK violations on delete surfacing as 409.

type customerHandler struct {
	svc portssvc.CustomerSvcFacade
}

type supplierHandler struct {
	svc portssvc.SupplierSvcFacade
}

type containerHandler struct {
	svc portssvc.ContainerSvcFacade
}

type expenseCategoryHandler struct {
	svc portssvc.ExpenseCategorySvcFacade
}

// registerMasterDataRoutes registers the customer, supplier, container and
// expense category routes.
func registerMasterDataRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	ch := &customerHandler{svc: services.Customer}
	customers := rg.Group("/customers")
	{
		customers.POST("", ch.create)
		customers.GET("", ch.list)
		customers.GET("/:id", ch.get)
		customers.PUT("/:id", ch.update)
		customers.DELETE("/:id", ch.delete)
	}

	sh := &supplierHandler{svc: services.Supplier}
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", sh.create)
		suppliers.GET("", sh.list)
		suppliers.GET("/:id", sh.get)
		suppliers.PUT("/:id", sh.update)
		suppliers.DELETE("/:id", sh.delete)
	}

	coh := &containerHandler{svc: services.Container}
	containers := rg.Group("/containers")
	{
		containers.POST("", coh.create)
		containers.GET("", coh.list)
		containers.GET("/:id", coh.get)
		containers.PUT("/:id", coh.update)
		containers.DELETE("/:id", coh.delete)
	}

	eh := &expenseCategoryHandler{svc: services.ExpenseCategory}
	categories := rg.Group("/expense-categories")
	{
		categories.POST("", eh.create)
		categories.GET("", eh.list)
		categories.GET("/:id", eh.get)
		categories.PUT("/:id", eh.update)
		categories.DELETE("/:id", eh.delete)
	}
}

// respondMasterDataError maps repository errors to HTTP statuses for the
// master data handlers.
func respondMasterDataError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: entity + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: entity + " already exists"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: entity + " is referenced by other documents"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Master data operation failed", "entity", entity, "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requireUserID pulls the authenticated user from the context or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreatePartnerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	customer, err := h.svc.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *customerHandler) list(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	customers, err := h.svc.ListCustomers(c.Request.Context(), params)
	if err != nil {
		respondMasterDataError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

func (h *customerHandler) get(c *gin.Context) {
	customer, err := h.svc.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMasterDataError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *customerHandler) update(c *gin.Context) {
	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	customer, err := h.svc.UpdateCustomer(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *customerHandler) delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCustomer(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondMasterDataError(c, err, "Customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreatePartnerRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	supplier, err := h.svc.CreateSupplier(c.Request.Context(), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) list(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	suppliers, err := h.svc.ListSuppliers(c.Request.Context(), params)
	if err != nil {
		respondMasterDataError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSupplierResponse(suppliers))
}

func (h *supplierHandler) get(c *gin.Context) {
	supplier, err := h.svc.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMasterDataError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) update(c *gin.Context) {
	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	supplier, err := h.svc.UpdateSupplier(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *supplierHandler) delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteSupplier(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondMasterDataError(c, err, "Supplier")
		return
	}
	c.Status(http.StatusNoContent)
}

// createContainer godoc
// @Summary Create a container
// @Tags containers
// @Accept json
// @Produce json
// @Param container body dto.CreateContainerRequest true "Container details"
// @Success 201 {object} dto.ContainerResponse
// @Security BearerAuth
// @Router /containers [post]
func (h *containerHandler) create(c *gin.Context) {
	var req dto.CreateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	container, err := h.svc.CreateContainer(c.Request.Context(), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Container")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContainerResponse(container))
}

func (h *containerHandler) list(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	containers, err := h.svc.ListContainers(c.Request.Context(), params)
	if err != nil {
		respondMasterDataError(c, err, "Container")
		return
	}
	c.JSON(http.StatusOK, dto.ToListContainerResponse(containers))
}

func (h *containerHandler) get(c *gin.Context) {
	container, err := h.svc.GetContainerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMasterDataError(c, err, "Container")
		return
	}
	c.JSON(http.StatusOK, dto.ToContainerResponse(container))
}

func (h *containerHandler) update(c *gin.Context) {
	var req dto.UpdateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	container, err := h.svc.UpdateContainer(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Container")
		return
	}
	c.JSON(http.StatusOK, dto.ToContainerResponse(container))
}

func (h *containerHandler) delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteContainer(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondMasterDataError(c, err, "Container")
		return
	}
	c.Status(http.StatusNoContent)
}

// createExpenseCategory godoc
// @Summary Create an expense category
// @Tags expense-categories
// @Accept json
// @Produce json
// @Param category body dto.CreateExpenseCategoryRequest true "Category details"
// @Success 201 {object} dto.ExpenseCategoryResponse
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *expenseCategoryHandler) create(c *gin.Context) {
	var req dto.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	category, err := h.svc.CreateExpenseCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Expense category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseCategoryResponse(category))
}

func (h *expenseCategoryHandler) list(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	categories, err := h.svc.ListExpenseCategories(c.Request.Context(), params)
	if err != nil {
		respondMasterDataError(c, err, "Expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseCategoryResponse(categories))
}

func (h *expenseCategoryHandler) get(c *gin.Context) {
	category, err := h.svc.GetExpenseCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMasterDataError(c, err, "Expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

func (h *expenseCategoryHandler) update(c *gin.Context) {
	var req dto.UpdateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	category, err := h.svc.UpdateExpenseCategory(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondMasterDataError(c, err, "Expense category")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseCategoryResponse(category))
}

func (h *expenseCategoryHandler) delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteExpenseCategory(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondMasterDataError(c, err, "Expense category")
		return
	}
	c.Status(http.StatusNoContent)
}
