package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/models"
)

// LocationHandler serves the parking location endpoints.
type LocationHandler struct {
	locationService core.LocationService
	logger          *zap.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(ls core.LocationService, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{locationService: ls, logger: logger}
}

// CreateLocation handles POST /create-location-park/:companyId
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req models.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	location, err := h.locationService.CreateLocation(c.Request.Context(), c.Param("companyId"), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errCreateLocation)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: location, Message: msgLocationCreated})
}

// ListLocations handles GET /get-parking
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetchLocations)
		return
	}
	if len(locations) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNoLocations})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: locations, Message: msgFetched})
}

// GetLocation handles GET /get-parking/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	detail, err := h.locationService.GetLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetchLocation)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: detail, Message: msgFetched})
}

// UpdateLocation handles POST /update-parking/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req models.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.locationService.UpdateLocation(c.Request.Context(), c.Param("id"), req); err != nil {
		mapErrorToStatus(c, h.logger, err, errUpdateLocation)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: req, Message: msgLocationUpdated})
}

// DeleteLocation handles DELETE /delete-parking/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	if err := h.locationService.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		mapErrorToStatus(c, h.logger, err, errDeleteLocation)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: msgLocationDeleted})
}
