// Package http provides HTTP handlers for order operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/certmaker/internal/errors"
	"github.com/allisson/certmaker/internal/httputil"
	"github.com/allisson/certmaker/internal/order/http/dto"
	orderUseCase "github.com/allisson/certmaker/internal/order/usecase"
	"github.com/allisson/certmaker/internal/validation"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	useCase orderUseCase.OrderUseCase
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(useCase orderUseCase.OrderUseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// Create handles POST /v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, validation.WrapValidationError(err), h.logger)
		return
	}

	order, err := h.useCase.Create(c.Request.Context(), request.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapOrderToResponse(order))
}

// Get handles GET /v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid order id"), h.logger)
		return
	}

	order, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOrderToPublicResponse(order))
}
