// Package repository provides order persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/certmaker/internal/order/domain"
)

// OrderRepository stores and retrieves orders.
type OrderRepository interface {
	// Create stores a new order.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID returns the order with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// GetByPaymentIntentID returns the order tied to a payment intent, or ErrNotFound.
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Order, error)

	// Update replaces the stored order.
	Update(ctx context.Context, order *domain.Order) error
}
