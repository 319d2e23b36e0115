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

// purchaseHandler handles HTTP requests related to purchase invoices.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// registerPurchaseRoutes registers routes related to purchase invoices.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := &purchaseHandler{purchaseService: purchaseService}

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchaseInvoice)
		purchases.GET("", h.listPurchaseInvoices)
		purchases.GET("/:id", h.getPurchaseInvoice)
		purchases.PUT("/:id", h.updatePurchaseInvoice)
		purchases.DELETE("/:id", h.deletePurchaseInvoice)
	}
}

// createPurchaseInvoice godoc
// @Summary Create a purchase invoice
// @Description Creates a purchase invoice with its ordered items
// @Tags purchases
// @Accept json
// @Produce json
// @Param invoice body dto.CreatePurchaseInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.PurchaseInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.purchaseService.CreatePurchaseInvoice(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create purchase invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create purchase invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseInvoiceResponse(invoice))
}

// listPurchaseInvoices godoc
// @Summary List purchase invoices
// @Tags purchases
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PurchaseInvoiceResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchaseInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.purchaseService.ListPurchaseInvoices(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list purchase invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list purchase invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchaseInvoiceResponse(invoices))
}

// getPurchaseInvoice godoc
// @Summary Get a purchase invoice by ID
// @Tags purchases
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.PurchaseInvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, err := h.purchaseService.GetPurchaseInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase invoice not found"})
			return
		}
		logger.Error("Failed to get purchase invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve purchase invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseInvoiceResponse(invoice))
}

// updatePurchaseInvoice godoc
// @Summary Update a purchase invoice
// @Description Updates a purchase invoice. A provided item list replaces the existing one and is rejected once goods have been received.
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdatePurchaseInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) updatePurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.purchaseService.UpdatePurchaseInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Invoice items cannot change once goods have been received"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update purchase invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update purchase invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseInvoiceResponse(invoice))
}

// deletePurchaseInvoice godoc
// @Summary Delete a purchase invoice
// @Description Deletes a purchase invoice that no receiving invoice references
// @Tags purchases
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchaseInvoice(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Purchase invoice not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Purchase invoice has receiving invoices and cannot be deleted"})
			return
		}
		logger.Error("Failed to delete purchase invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete purchase invoice"})
		return
	}

	c.Status(http.StatusNoContent)
}
