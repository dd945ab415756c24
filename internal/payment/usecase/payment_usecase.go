// Package usecase processes payment provider webhook events.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/stripe/stripe-go/v82"

	apperrors "github.com/allisson/certmaker/internal/errors"
	fulfillmentService "github.com/allisson/certmaker/internal/fulfillment/service"
	orderUseCase "github.com/allisson/certmaker/internal/order/usecase"
	paymentService "github.com/allisson/certmaker/internal/payment/service"
)

// PaymentUseCase handles incoming payment webhook deliveries.
type PaymentUseCase interface {
	// HandleWebhook verifies the delivery, applies the event to the matching
	// order, and forwards paid orders for fulfillment. Signature failures are
	// ErrInvalidInput; everything else is acknowledged so the provider does
	// not replay deliveries we cannot act on.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error
}

// paymentUseCase implements PaymentUseCase.
type paymentUseCase struct {
	verifier    paymentService.SignatureVerifier
	orders      orderUseCase.OrderUseCase
	fulfillment fulfillmentService.Forwarder
	logger      *slog.Logger
}

// NewPaymentUseCase creates a payment use case.
func NewPaymentUseCase(
	verifier paymentService.SignatureVerifier,
	orders orderUseCase.OrderUseCase,
	fulfillment fulfillmentService.Forwarder,
	logger *slog.Logger,
) PaymentUseCase {
	return &paymentUseCase{
		verifier:    verifier,
		orders:      orders,
		fulfillment: fulfillment,
		logger:      logger,
	}
}

// HandleWebhook verifies and applies a webhook delivery.
func (u *paymentUseCase) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := u.verifier.Verify(payload, signatureHeader)
	if err != nil {
		return err
	}

	if event.Type != stripe.EventTypePaymentIntentSucceeded {
		u.logger.Debug("ignoring webhook event", slog.String("event_type", string(event.Type)))
		return nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "parse payment intent event: %v", err)
	}

	order, err := u.orders.MarkPaid(ctx, intent.ID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			// Orders live in memory: a delivery for an order created before
			// the last restart has nothing to match. Acknowledge it.
			u.logger.Warn("webhook for unmatched payment intent",
				slog.String("payment_intent_id", intent.ID),
			)
			return nil
		}
		return err
	}

	if err := u.fulfillment.Forward(ctx, order); err != nil {
		// Forwarding has no retry. Acknowledge the delivery and leave the
		// order in paid so the gap is visible.
		u.logger.Error("fulfillment forwarding failed",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
		return nil
	}

	if _, err := u.orders.MarkFulfilled(ctx, intent.ID); err != nil {
		return err
	}
	return nil
}
