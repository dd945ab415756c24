package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/certmaker/internal/errors"
	"github.com/allisson/certmaker/internal/order/domain"
)

func newOrder(t *testing.T) *domain.Order {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err)

	return &domain.Order{
		ID:              id,
		BuyerEmail:      "buyer@example.com",
		PaymentIntentID: "pi_" + id.String(),
		AmountCents:     999,
		Currency:        "usd",
		Status:          domain.StatusPending,
	}
}

func TestMemoryOrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get by id", func(t *testing.T) {
		repo := NewMemoryOrderRepository()
		order := newOrder(t)

		require.NoError(t, repo.Create(ctx, order))
		assert.False(t, order.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, domain.StatusPending, got.Status)
	})

	t.Run("get by payment intent id", func(t *testing.T) {
		repo := NewMemoryOrderRepository()
		order := newOrder(t)
		require.NoError(t, repo.Create(ctx, order))

		got, err := repo.GetByPaymentIntentID(ctx, order.PaymentIntentID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("missing orders return not found", func(t *testing.T) {
		repo := NewMemoryOrderRepository()

		_, err := repo.GetByID(ctx, uuid.New())
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))

		_, err = repo.GetByPaymentIntentID(ctx, "pi_missing")
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("duplicate create is rejected", func(t *testing.T) {
		repo := NewMemoryOrderRepository()
		order := newOrder(t)
		require.NoError(t, repo.Create(ctx, order))

		err := repo.Create(ctx, order)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("update changes status", func(t *testing.T) {
		repo := NewMemoryOrderRepository()
		order := newOrder(t)
		require.NoError(t, repo.Create(ctx, order))

		order.Status = domain.StatusPaid
		require.NoError(t, repo.Update(ctx, order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, got.Status)
	})

	t.Run("update of unknown order fails", func(t *testing.T) {
		repo := NewMemoryOrderRepository()
		err := repo.Update(ctx, newOrder(t))
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("returned orders are copies", func(t *testing.T) {
		repo := NewMemoryOrderRepository()
		order := newOrder(t)
		require.NoError(t, repo.Create(ctx, order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		got.Status = domain.StatusFulfilled

		again, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, again.Status)
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		repo := NewMemoryOrderRepository()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				order := newOrder(t)
				require.NoError(t, repo.Create(ctx, order))
				_, err := repo.GetByPaymentIntentID(ctx, order.PaymentIntentID)
				require.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}
