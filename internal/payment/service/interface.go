// Package service provides the payment provider integration.
package service

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

// PaymentIntent is the provider-neutral view of a created payment intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
}

// PaymentProvider creates payment intents with the payment processor.
type PaymentProvider interface {
	// CreateIntent registers a charge for the given amount and returns the
	// intent id plus the client secret the frontend needs to confirm it.
	CreateIntent(
		ctx context.Context,
		amountCents int64,
		currency string,
		metadata map[string]string,
	) (*PaymentIntent, error)
}

// SignatureVerifier authenticates incoming webhook payloads.
type SignatureVerifier interface {
	// Verify checks the signature header against the shared webhook secret
	// and returns the parsed event.
	Verify(payload []byte, signatureHeader string) (stripe.Event, error)
}
