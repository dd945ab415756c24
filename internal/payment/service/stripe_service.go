package service

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	apperrors "github.com/allisson/certmaker/internal/errors"
)

// stripeProvider implements PaymentProvider on top of the Stripe API.
type stripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a payment provider backed by Stripe.
func NewStripeProvider(secretKey string) PaymentProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeProvider{api: api}
}

// CreateIntent registers a payment intent with Stripe.
func (p *stripeProvider) CreateIntent(
	ctx context.Context,
	amountCents int64,
	currency string,
	metadata map[string]string,
) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "create payment intent: %v", err)
	}

	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
