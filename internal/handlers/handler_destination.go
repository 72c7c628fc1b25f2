package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wayfarerhq/wayfarer_backend/internal/apperrors"
	portssvc "github.com/wayfarerhq/wayfarer_backend/internal/core/ports/services"
	"github.com/wayfarerhq/wayfarer_backend/internal/dto"
	"github.com/wayfarerhq/wayfarer_backend/internal/middleware"
)

// destinationHandler handles HTTP requests related to shared destinations.
type destinationHandler struct {
	destinationService portssvc.DestinationSvcFacade
}

// newDestinationHandler creates a new destinationHandler.
func newDestinationHandler(ds portssvc.DestinationSvcFacade) *destinationHandler {
	return &destinationHandler{destinationService: ds}
}

// registerDestinationRoutes registers all destination-related routes.
func registerDestinationRoutes(rg *gin.RouterGroup, destinationService portssvc.DestinationSvcFacade) {
	h := newDestinationHandler(destinationService)

	destinations := rg.Group("/destinations")
	{
		destinations.POST("", h.createDestination)
		destinations.GET("", h.listDestinations)
		destinations.DELETE("/:destinationID", h.deleteDestination)
	}
}

// createDestination godoc
// @Summary Create a destination pin
// @Description Adds a destination to the shared map. Destinations have no owner.
// @Tags destinations
// @Accept json
// @Produce json
// @Param destination body dto.CreateDestinationRequest true "Destination details"
// @Success 201 {object} dto.DestinationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Destination already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /destinations [post]
func (h *destinationHandler) createDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	username, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	destination, err := h.destinationService.CreateDestination(c.Request.Context(), username, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Destination already exists"})
			return
		}
		logger.Error("Failed to create destination", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create destination"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDestinationResponse(destination))
}

// listDestinations godoc
// @Summary List all destinations
// @Description Returns every destination pin on the shared map.
// @Tags destinations
// @Produce json
// @Success 200 {object} dto.ListDestinationsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /destinations [get]
func (h *destinationHandler) listDestinations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	destinations, err := h.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list destinations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list destinations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDestinationsResponse(destinations))
}

// deleteDestination godoc
// @Summary Delete a destination pin
// @Description Removes a destination from the shared map. No ownership check: any authenticated user may delete any pin.
// @Tags destinations
// @Produce json
// @Param destinationID path string true "Destination ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Destination not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /destinations/{destinationID} [delete]
func (h *destinationHandler) deleteDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.destinationService.DeleteDestination(c.Request.Context(), c.Param("destinationID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Destination not found"})
			return
		}
		logger.Error("Failed to delete destination", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete destination"})
		return
	}

	c.Status(http.StatusNoContent)
}
