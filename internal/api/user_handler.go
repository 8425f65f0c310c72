package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
	"github.com/wuquf/wuquf-backend/internal/models"
)

// UserHandler serves sign-up and user profile reads.
type UserHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(us core.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: us, logger: logger}
}

// SignUp handles POST /singup
func (h *UserHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.SignUp(c.Request.Context(), req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errSignUp)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: user, Message: msgSignedUp})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetch)
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgNoUsers})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: users, Message: msgFetched})
}

// GetUser handles GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errFetch)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Data: user, Message: msgFetched})
}
