package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nileport/trading_erp/internal/apperrors"
	portssvc "github.com/nileport/trading_erp/internal/core/ports/services"
	"github.com/nileport/trading_erp/internal/dto"
	"github.com/nileport/trading_erp/internal/middleware"
)

// inventoryHandler handles HTTP requests for the read-only inventory report.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerInventoryRoutes registers routes related to inventory.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.registerInventoryItem)
		inventory.GET("/report", h.inventoryReport)
		inventory.GET("/:id", h.getInventoryItem)
	}
}

// registerInventoryItem godoc
// @Summary Register an inventory item
// @Description Registers an item with zero counters ahead of any stock movement
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) registerInventoryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.RegisterInventoryItem(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to register inventory item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register inventory item"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// inventoryReport godoc
// @Summary Inventory report
// @Description Lists the stock report, optionally filtered by search term and low stock threshold
// @Tags inventory
// @Produce json
// @Param search query string false "Match item names and barcodes"
// @Param lowStock query int false "Only items with balance at or below this value"
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/report [get]
func (h *inventoryHandler) inventoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInventoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.inventoryService.ListInventory(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list inventory", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list inventory"})
		return
	}

	c.JSON(http.StatusOK, dto.ListInventoryResponse{Items: dto.ToListInventoryResponse(items)})
}

// getInventoryItem godoc
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getInventoryItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	item, err := h.inventoryService.GetInventoryItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Inventory item not found"})
			return
		}
		logger.Error("Failed to get inventory item", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve inventory item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}
