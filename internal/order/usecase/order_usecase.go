package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/allisson/certmaker/internal/errors"
	"github.com/allisson/certmaker/internal/order/domain"
	"github.com/allisson/certmaker/internal/order/repository"
	paymentService "github.com/allisson/certmaker/internal/payment/service"
)

// orderUseCase implements OrderUseCase.
type orderUseCase struct {
	repository repository.OrderRepository
	payments   paymentService.PaymentProvider
	priceCents int64
	currency   string
	logger     *slog.Logger
}

// NewOrderUseCase creates an order use case charging a flat price per certificate.
func NewOrderUseCase(
	repo repository.OrderRepository,
	payments paymentService.PaymentProvider,
	priceCents int64,
	currency string,
	logger *slog.Logger,
) OrderUseCase {
	return &orderUseCase{
		repository: repo,
		payments:   payments,
		priceCents: priceCents,
		currency:   currency,
		logger:     logger,
	}
}

// Create registers a payment intent and stores a pending order.
func (u *orderUseCase) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "generate order id: %v", err)
	}

	order.ID = id
	order.AmountCents = u.priceCents
	order.Currency = u.currency
	order.Status = domain.StatusPending

	intent, err := u.payments.CreateIntent(ctx, order.AmountCents, order.Currency, map[string]string{
		"order_id": order.ID.String(),
		"style":    string(order.Certificate.Style),
	})
	if err != nil {
		return nil, err
	}

	order.PaymentIntentID = intent.ID
	order.ClientSecret = intent.ClientSecret

	if err := u.repository.Create(ctx, order); err != nil {
		return nil, err
	}

	u.logger.Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.String("payment_intent_id", order.PaymentIntentID),
		slog.Int64("amount_cents", order.AmountCents),
	)
	return order, nil
}

// Get returns the order with the given id.
func (u *orderUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return u.repository.GetByID(ctx, id)
}

// MarkPaid transitions the order tied to a payment intent to paid.
func (u *orderUseCase) MarkPaid(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	order, err := u.repository.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusPending {
		return order, nil
	}

	order.Status = domain.StatusPaid
	if err := u.repository.Update(ctx, order); err != nil {
		return nil, err
	}

	u.logger.Info("order paid",
		slog.String("order_id", order.ID.String()),
		slog.String("payment_intent_id", paymentIntentID),
	)
	return order, nil
}

// MarkFulfilled records that the order was forwarded for delivery.
func (u *orderUseCase) MarkFulfilled(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	order, err := u.repository.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.StatusFulfilled {
		return order, nil
	}

	order.Status = domain.StatusFulfilled
	if err := u.repository.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
