package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/core"
)

// PaymentHandler serves the Stripe client endpoints. Their bodies follow
// Stripe's client samples instead of SuccessResponse.
type PaymentHandler struct {
	paymentService core.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(ps core.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: ps, logger: logger}
}

// GetConfig handles GET /config
func (h *PaymentHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{PublishableKey: h.paymentService.PublishableKey()})
}

// CreatePaymentIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	secret, err := h.paymentService.CreatePaymentIntent(c.Request.Context())
	if err != nil {
		mapErrorToStatus(c, h.logger, err, errPayment)
		return
	}
	c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}
