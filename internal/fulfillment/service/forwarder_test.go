package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
	apperrors "github.com/allisson/certmaker/internal/errors"
	orderDomain "github.com/allisson/certmaker/internal/order/domain"
)

func paidOrder(t *testing.T) *orderDomain.Order {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err)

	return &orderDomain.Order{
		ID:             id,
		BuyerEmail:     "buyer@example.com",
		RecipientEmail: "recipient@example.com",
		Certificate: certificateDomain.CertificateRequest{
			FirstName:         "Jane",
			LastName:          "Doe",
			CertificationDate: "June 1st, 2024",
			DegreeLevel:       "Bachelor",
			Faculty:           "Nonsense Studies",
			Achievement:       "Dog Walking",
			Style:             certificateDomain.StyleClassic,
		},
		PaymentIntentID: "pi_123",
		AmountCents:     999,
		Currency:        "usd",
		Status:          orderDomain.StatusPaid,
	}
}

func TestWebhookForwarder(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the flat payload", func(t *testing.T) {
		var received map[string]any
		var contentType string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		forwarder := NewWebhookForwarder(server.URL, slog.Default())
		require.NoError(t, forwarder.Forward(ctx, paidOrder(t)))

		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, "buyer@example.com", received["email"])
		assert.Equal(t, "buyer@example.com", received["buyerEmail"])
		assert.Equal(t, "recipient@example.com", received["recipientEmail"])
		assert.Equal(t, "Jane", received["firstName"])
		assert.Equal(t, "Doe", received["lastName"])
		assert.Equal(t, "June 1st, 2024", received["certificationDate"])
		assert.Equal(t, "Bachelor", received["degreeLevel"])
		assert.Equal(t, "Nonsense Studies", received["faculty"])
		assert.Equal(t, "Dog Walking", received["achievement"])
		assert.Equal(t, "classic", received["style"])
		assert.Equal(t, "pi_123", received["paymentIntentId"])
		assert.Equal(t, float64(999), received["amountPaid"])
	})

	t.Run("non-2xx response is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		forwarder := NewWebhookForwarder(server.URL, slog.Default())
		err := forwarder.Forward(ctx, paidOrder(t))

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrUpstream))
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("unreachable endpoint is an upstream error", func(t *testing.T) {
		forwarder := NewWebhookForwarder("http://127.0.0.1:1/webhook", slog.Default())
		err := forwarder.Forward(ctx, paidOrder(t))

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrUpstream))
	})

	t.Run("empty URL disables forwarding", func(t *testing.T) {
		forwarder := NewWebhookForwarder("", slog.Default())
		assert.NoError(t, forwarder.Forward(ctx, paidOrder(t)))
	})

	t.Run("does not retry on failure", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		forwarder := NewWebhookForwarder(server.URL, slog.Default())
		require.Error(t, forwarder.Forward(ctx, paidOrder(t)))
		assert.Equal(t, 1, calls)
	})
}
