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

// shipmentHandler handles HTTP requests related to shipments.
type shipmentHandler struct {
	shipmentService portssvc.ShipmentSvcFacade
}

// registerShipmentRoutes registers routes related to shipments.
func registerShipmentRoutes(rg *gin.RouterGroup, shipmentService portssvc.ShipmentSvcFacade) {
	h := &shipmentHandler{shipmentService: shipmentService}

	shipments := rg.Group("/shipments")
	{
		shipments.POST("", h.createShipment)
		shipments.GET("", h.listShipments)
		shipments.GET("/:id", h.getShipment)
		shipments.DELETE("/:id", h.deleteShipment)
	}
}

// createShipment godoc
// @Summary Create a shipment
// @Description Creates a shipment and decrements inventory per line atomically. Returns 422 when strict stock policy blocks a line.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body dto.CreateShipmentRequest true "Shipment details"
// @Success 201 {object} dto.ShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipments [post]
func (h *shipmentHandler) createShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	shipment, err := h.shipmentService.CreateShipment(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientStock):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create shipment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create shipment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShipmentResponse(shipment))
}

// listShipments godoc
// @Summary List shipments
// @Tags shipments
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.ShipmentResponse
// @Security BearerAuth
// @Router /shipments [get]
func (h *shipmentHandler) listShipments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	shipments, err := h.shipmentService.ListShipments(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list shipments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list shipments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListShipmentResponse(shipments))
}

// getShipment godoc
// @Summary Get a shipment by ID
// @Tags shipments
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} dto.ShipmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipments/{id} [get]
func (h *shipmentHandler) getShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shipment, err := h.shipmentService.GetShipmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shipment not found"})
			return
		}
		logger.Error("Failed to get shipment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shipment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShipmentResponse(shipment))
}

// deleteShipment godoc
// @Summary Delete a shipment
// @Description Deletes a shipment and restores its inventory decrements atomically
// @Tags shipments
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /shipments/{id} [delete]
func (h *shipmentHandler) deleteShipment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.shipmentService.DeleteShipment(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shipment not found"})
			return
		}
		logger.Error("Failed to delete shipment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete shipment"})
		return
	}

	c.Status(http.StatusNoContent)
}
