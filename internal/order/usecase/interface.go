// Package usecase orchestrates order creation and payment transitions.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/certmaker/internal/order/domain"
)

// OrderUseCase exposes order operations to handlers and the payment flow.
type OrderUseCase interface {
	// Create registers a payment intent for the flat certificate price and
	// stores a pending order. The returned order carries the client secret
	// the frontend needs to confirm the payment.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// Get returns the order with the given id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// MarkPaid transitions the order tied to a payment intent to paid.
	// Already-paid orders are returned unchanged, so replayed webhook
	// deliveries are harmless.
	MarkPaid(ctx context.Context, paymentIntentID string) (*domain.Order, error)

	// MarkFulfilled records that the order was forwarded for delivery.
	MarkFulfilled(ctx context.Context, paymentIntentID string) (*domain.Order, error)
}
