package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
)

// mapErrorToStatus writes the response for a service error. Known sentinels
// become 400 or 404; everything else is logged and answered with 500 and
// fallback as the message.
func mapErrorToStatus(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	var statusCode int
	var resp ErrorResponse

	switch {
	case errors.Is(err, core.ErrMissingUserID):
		statusCode = http.StatusBadRequest
		resp = ErrorResponse{Error: msgMissingUserID}
	case errors.Is(err, core.ErrMissingFields):
		statusCode = http.StatusBadRequest
		resp = ErrorResponse{Error: msgMissingFields, Details: err.Error()}
	case errors.Is(err, core.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		resp = ErrorResponse{Error: msgInvalidPayload, Details: err.Error()}
	case errors.Is(err, core.ErrUserNotFound):
		statusCode = http.StatusNotFound
		resp = ErrorResponse{Error: msgUserNotFound}
	case errors.Is(err, core.ErrCompanyNotFound):
		statusCode = http.StatusNotFound
		resp = ErrorResponse{Error: msgCompanyNotFound}
	case errors.Is(err, core.ErrLocationNotFound):
		statusCode = http.StatusNotFound
		resp = ErrorResponse{Error: msgLocationNotFound}
	case errors.Is(err, core.ErrSpotNotFound):
		statusCode = http.StatusNotFound
		resp = ErrorResponse{Error: msgSpotNotFound}
	case errors.Is(err, core.ErrReservationNotFound):
		statusCode = http.StatusNotFound
		resp = ErrorResponse{Error: msgReservationNotFound}
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		statusCode = http.StatusInternalServerError
		resp = ErrorResponse{Error: fallback, Details: err.Error()}
	}
	c.JSON(statusCode, resp)
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidPayload, Details: err.Error()})
		return false
	}
	return true
}
