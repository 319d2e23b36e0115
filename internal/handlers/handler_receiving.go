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

// receivingHandler handles HTTP requests related to receiving invoices.
type receivingHandler struct {
	receivingService portssvc.ReceivingSvcFacade
}

// registerReceivingRoutes registers routes related to receiving invoices.
func registerReceivingRoutes(rg *gin.RouterGroup, receivingService portssvc.ReceivingSvcFacade) {
	h := &receivingHandler{receivingService: receivingService}

	receivings := rg.Group("/receiving")
	{
		receivings.POST("", h.createReceivingInvoice)
		receivings.GET("", h.listReceivingInvoices)
		receivings.GET("/:id", h.getReceivingInvoice)
		receivings.DELETE("/:id", h.deleteReceivingInvoice)
	}
}

// createReceivingInvoice godoc
// @Summary Create a receiving invoice
// @Description Creates a receiving invoice and increments inventory per line atomically
// @Tags receivings
// @Accept json
// @Produce json
// @Param invoice body dto.CreateReceivingInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.ReceivingInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /receiving [post]
func (h *receivingHandler) createReceivingInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceivingInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.receivingService.CreateReceivingInvoice(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create receiving invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create receiving invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceivingInvoiceResponse(invoice))
}

// listReceivingInvoices godoc
// @Summary List receiving invoices
// @Tags receivings
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.ReceivingInvoiceResponse
// @Security BearerAuth
// @Router /receiving [get]
func (h *receivingHandler) listReceivingInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.receivingService.ListReceivingInvoices(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list receiving invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list receiving invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReceivingInvoiceResponse(invoices))
}

// getReceivingInvoice godoc
// @Summary Get a receiving invoice by ID
// @Tags receivings
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.ReceivingInvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receiving/{id} [get]
func (h *receivingHandler) getReceivingInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoice, err := h.receivingService.GetReceivingInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receiving invoice not found"})
			return
		}
		logger.Error("Failed to get receiving invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve receiving invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivingInvoiceResponse(invoice))
}

// deleteReceivingInvoice godoc
// @Summary Delete a receiving invoice
// @Description Deletes a receiving invoice and reverses its inventory increments atomically
// @Tags receivings
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /receiving/{id} [delete]
func (h *receivingHandler) deleteReceivingInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.receivingService.DeleteReceivingInvoice(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receiving invoice not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Receiving invoice has shipped items and cannot be deleted"})
			return
		}
		logger.Error("Failed to delete receiving invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete receiving invoice"})
		return
	}

	c.Status(http.StatusNoContent)
}
