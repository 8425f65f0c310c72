package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/models"
)

// SpotHandler serves the parking spot endpoints.
type SpotHandler struct {
	spotService core.SpotService
	logger      *zap.Logger
}

// NewSpotHandler creates a SpotHandler.
func NewSpotHandler(ss core.SpotService, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{spotService: ss, logger: logger}
}

// CreateSpot handles POST /create-parking/:ParkingId
func (h *SpotHandler) CreateSpot(c *gin.Context) {
	var req models.CreateSpotRequest
	if !bindJSON(c, &req) {
		return
	}
	spot, err := h.spotService.CreateSpot(c.Request.Context(), c.Param("ParkingId"), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errCreateSpot)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: spot, Message: msgSpotCreated})
}

// ListSpots handles GET /get-park. An empty collection is a 200 with an empty list.
func (h *SpotHandler) ListSpots(c *gin.Context) {
	spots, err := h.spotService.ListSpots(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetchSpots)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: spots, Message: msgFetched})
}

// GetSpot handles GET /get-park/:id
func (h *SpotHandler) GetSpot(c *gin.Context) {
	spot, err := h.spotService.GetSpot(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetchSpots)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: spot, Message: msgFetched})
}

// UpdateSpot handles POST /update-park/:ParkId
func (h *SpotHandler) UpdateSpot(c *gin.Context) {
	var req models.UpdateSpotRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.spotService.UpdateSpot(c.Request.Context(), c.Param("ParkId"), req); err != nil {
		mapErrorToStatus(c, h.logger, err, errUpdateSpot)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: req, Message: msgSpotUpdated})
}

// DeleteSpot handles DELETE /delete-park/:ParkId
func (h *SpotHandler) DeleteSpot(c *gin.Context) {
	if err := h.spotService.DeleteSpot(c.Request.Context(), c.Param("ParkId")); err != nil {
		mapErrorToStatus(c, h.logger, err, errDeleteSpot)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: msgSpotDeleted})
}
