package service

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	apperrors "github.com/allisson/certmaker/internal/errors"
)

// stripeSignatureVerifier validates webhook payloads using the shared secret.
type stripeSignatureVerifier struct {
	secret string
}

// NewStripeSignatureVerifier creates a verifier for Stripe webhook signatures.
func NewStripeSignatureVerifier(secret string) SignatureVerifier {
	return &stripeSignatureVerifier{secret: secret}
}

// Verify checks the Stripe-Signature header and parses the event.
// API version mismatches are tolerated: the Stripe account's webhook version
// moves independently of the pinned stripe-go release, and the succeeded
// payment-intent fields we read are stable across versions.
func (v *stripeSignatureVerifier) Verify(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, apperrors.Wrapf(apperrors.ErrInvalidInput, "webhook signature verification: %v", err)
	}
	return event, nil
}
