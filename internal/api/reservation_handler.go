package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/models"
)

// ReservationHandler serves the reservation endpoints.
type ReservationHandler struct {
	reservationService core.ReservationService
	logger             *zap.Logger
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(rs core.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{reservationService: rs, logger: logger}
}

// ListReservations handles GET /reserve-parking
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationService.ListReservations(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetch)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: reservations, Message: msgFetched})
}

// ReserveSpot handles POST /reserve-parking/:parkId
func (h *ReservationHandler) ReserveSpot(c *gin.Context) {
	var req models.ReserveSpotRequest
	if !bindJSON(c, &req) {
		return
	}
	spotID := c.Param("parkId")
	if err := h.reservationService.ReserveSpot(c.Request.Context(), spotID, req); err != nil {
		mapErrorToStatus(c, h.logger, err, errReserve)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{
		Data:    models.Reservation{UserID: req.UserID, ParkID: spotID},
		Message: msgReserved,
	})
}

// UpdateReservation handles POST /update-reserve/:reserveId
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	var req models.UpdateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.reservationService.UpdateReservation(c.Request.Context(), c.Param("reserveId"), req); err != nil {
		mapErrorToStatus(c, h.logger, err, errUpdateReservation)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: req, Message: msgReservationUpdated})
}

// CancelReservation handles DELETE /delete-Reserve/:parkId
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	if err := h.reservationService.CancelReservation(c.Request.Context(), c.Param("parkId")); err != nil {
		mapErrorToStatus(c, h.logger, err, errCancelReservation)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: msgReservationDeleted})
}
