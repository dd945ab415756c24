package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/certmaker/internal/errors"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header for the payload.
func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeSignatureVerifier(t *testing.T) {
	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)

	t.Run("accepts a valid signature", func(t *testing.T) {
		verifier := NewStripeSignatureVerifier(testWebhookSecret)
		header := signPayload(payload, testWebhookSecret, time.Now())

		event, err := verifier.Verify(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, "payment_intent.succeeded", string(event.Type))
	})

	t.Run("accepts an event from a different api version", func(t *testing.T) {
		verifier := NewStripeSignatureVerifier(testWebhookSecret)
		versioned := []byte(`{"id":"evt_2","object":"event","api_version":"2020-08-27","type":"payment_intent.succeeded","data":{"object":{"id":"pi_2"}}}`)
		header := signPayload(versioned, testWebhookSecret, time.Now())

		event, err := verifier.Verify(versioned, header)
		require.NoError(t, err)
		assert.Equal(t, "evt_2", event.ID)
	})

	t.Run("rejects a signature from the wrong secret", func(t *testing.T) {
		verifier := NewStripeSignatureVerifier(testWebhookSecret)
		header := signPayload(payload, "whsec_other", time.Now())

		_, err := verifier.Verify(payload, header)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		verifier := NewStripeSignatureVerifier(testWebhookSecret)
		header := signPayload(payload, testWebhookSecret, time.Now())

		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = '!'

		_, err := verifier.Verify(tampered, header)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("rejects a stale timestamp", func(t *testing.T) {
		verifier := NewStripeSignatureVerifier(testWebhookSecret)
		header := signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))

		_, err := verifier.Verify(payload, header)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		verifier := NewStripeSignatureVerifier(testWebhookSecret)

		_, err := verifier.Verify(payload, "")
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
