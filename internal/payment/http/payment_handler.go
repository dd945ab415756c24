// Package http provides the payment webhook HTTP handler.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/certmaker/internal/httputil"
	paymentUseCase "github.com/allisson/certmaker/internal/payment/usecase"
)

// PaymentHandler handles payment webhook deliveries.
type PaymentHandler struct {
	useCase paymentUseCase.PaymentUseCase
	logger  *slog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(useCase paymentUseCase.PaymentUseCase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// Webhook handles POST /v1/payments/webhook.
// The raw body is needed for signature verification, so the payload is read
// before any JSON binding.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.useCase.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
