// Package domain contains the order model for certificate purchases.
package domain

import (
	"time"

	"github.com/google/uuid"

	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
)

// OrderStatus tracks an order through its payment lifecycle.
type OrderStatus string

const (
	// StatusPending means a payment intent exists but has not been confirmed.
	StatusPending OrderStatus = "pending"
	// StatusPaid means the payment provider confirmed the charge.
	StatusPaid OrderStatus = "paid"
	// StatusFulfilled means the order was forwarded for delivery.
	StatusFulfilled OrderStatus = "fulfilled"
)

// Order represents a single certificate purchase.
//
// ClientSecret is transient: it is returned to the buyer so the frontend can
// confirm the payment, but it is never required again after creation.
type Order struct {
	ID              uuid.UUID
	BuyerEmail      string
	RecipientEmail  string
	Certificate     certificateDomain.CertificateRequest
	PaymentIntentID string
	ClientSecret    string
	AmountCents     int64
	Currency        string
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
