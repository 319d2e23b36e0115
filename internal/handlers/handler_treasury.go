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

// treasuryHandler handles HTTP requests related to treasuries.
type treasuryHandler struct {
	treasuryService portssvc.TreasurySvcFacade
}

// registerTreasuryRoutes registers routes related to treasuries.
func registerTreasuryRoutes(rg *gin.RouterGroup, treasuryService portssvc.TreasurySvcFacade) {
	h := &treasuryHandler{treasuryService: treasuryService}

	treasuries := rg.Group("/treasuries")
	{
		treasuries.POST("", h.createTreasury)
		treasuries.GET("", h.listTreasuries)
		treasuries.GET("/:id", h.getTreasury)
		treasuries.PUT("/:id", h.updateTreasury)
		treasuries.DELETE("/:id", h.deleteTreasury)
	}
}

// createTreasury godoc
// @Summary Create a new treasury
// @Description Creates a treasury with a zero opening balance
// @Tags treasuries
// @Accept json
// @Produce json
// @Param treasury body dto.CreateTreasuryRequest true "Treasury details"
// @Success 201 {object} dto.TreasuryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasuries [post]
func (h *treasuryHandler) createTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	treasury, err := h.treasuryService.CreateTreasury(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create treasury", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create treasury"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTreasuryResponse(treasury))
}

// listTreasuries godoc
// @Summary List treasuries
// @Description Lists all treasuries with their current balances
// @Tags treasuries
// @Produce json
// @Success 200 {object} dto.ListTreasuriesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasuries [get]
func (h *treasuryHandler) listTreasuries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	treasuries, err := h.treasuryService.ListTreasuries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list treasuries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list treasuries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTreasuriesResponse{Treasuries: dto.ToListTreasuryResponse(treasuries)})
}

// getTreasury godoc
// @Summary Get a treasury by ID
// @Description Retrieves one treasury with its current balance
// @Tags treasuries
// @Produce json
// @Param id path string true "Treasury ID"
// @Success 200 {object} dto.TreasuryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasuries/{id} [get]
func (h *treasuryHandler) getTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	treasury, err := h.treasuryService.GetTreasuryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Treasury not found"})
			return
		}
		logger.Error("Failed to get treasury", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve treasury"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTreasuryResponse(treasury))
}

// updateTreasury godoc
// @Summary Update a treasury
// @Description Renames a treasury. The balance is not writable.
// @Tags treasuries
// @Accept json
// @Produce json
// @Param id path string true "Treasury ID"
// @Param treasury body dto.UpdateTreasuryRequest true "Fields to update"
// @Success 200 {object} dto.TreasuryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasuries/{id} [put]
func (h *treasuryHandler) updateTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTreasuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	treasury, err := h.treasuryService.UpdateTreasury(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Treasury not found"})
			return
		}
		logger.Error("Failed to update treasury", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update treasury"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTreasuryResponse(treasury))
}

// deleteTreasury godoc
// @Summary Delete a treasury
// @Description Deletes a treasury that has no vouchers referencing it
// @Tags treasuries
// @Produce json
// @Param id path string true "Treasury ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /treasuries/{id} [delete]
func (h *treasuryHandler) deleteTreasury(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.treasuryService.DeleteTreasury(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Treasury not found"})
			return
		}
		if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Treasury has vouchers and cannot be deleted"})
			return
		}
		logger.Error("Failed to delete treasury", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete treasury"})
		return
	}

	c.Status(http.StatusNoContent)
}
