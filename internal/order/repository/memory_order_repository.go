package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/certmaker/internal/errors"
	"github.com/allisson/certmaker/internal/order/domain"
)

// memoryOrderRepository keeps orders in process memory.
//
// Known gap: orders do not survive a restart. A payment confirmed by the
// provider after a restart will not find its order and the webhook handler
// logs it as unmatched.
type memoryOrderRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*domain.Order
	byIntent map[string]uuid.UUID
}

// NewMemoryOrderRepository creates an in-memory order repository.
func NewMemoryOrderRepository() OrderRepository {
	return &memoryOrderRepository{
		byID:     make(map[uuid.UUID]*domain.Order),
		byIntent: make(map[string]uuid.UUID),
	}
}

// Create stores a new order.
func (r *memoryOrderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; ok {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "order %s already exists", order.ID)
	}

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	r.byID[order.ID] = &stored
	if order.PaymentIntentID != "" {
		r.byIntent[order.PaymentIntentID] = order.ID
	}
	return nil
}

// GetByID returns the order with the given id.
func (r *memoryOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "order %s", id)
	}

	order := *stored
	return &order, nil
}

// GetByPaymentIntentID returns the order tied to a payment intent.
func (r *memoryOrderRepository) GetByPaymentIntentID(
	_ context.Context,
	paymentIntentID string,
) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byIntent[paymentIntentID]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrNotFound, "order for payment intent %s", paymentIntentID)
	}

	order := *r.byID[id]
	return &order, nil
}

// Update replaces the stored order.
func (r *memoryOrderRepository) Update(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[order.ID]; !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "order %s", order.ID)
	}

	order.UpdatedAt = time.Now().UTC()

	stored := *order
	r.byID[order.ID] = &stored
	if order.PaymentIntentID != "" {
		r.byIntent[order.PaymentIntentID] = order.ID
	}
	return nil
}
