// Package service forwards paid orders to the fulfillment webhook.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/allisson/certmaker/internal/errors"
	orderDomain "github.com/allisson/certmaker/internal/order/domain"
)

// Forwarder delivers paid orders to the downstream fulfillment system.
type Forwarder interface {
	// Forward posts the order payload to the fulfillment webhook. There is no
	// retry: delivery failures surface as ErrUpstream and are handled by the
	// caller.
	Forward(ctx context.Context, order *orderDomain.Order) error
}

// fulfillmentPayload is the flat JSON body the fulfillment webhook expects.
// The email field mirrors buyerEmail for consumers that predate the
// buyer/recipient split.
type fulfillmentPayload struct {
	Email             string `json:"email"`
	BuyerEmail        string `json:"buyerEmail"`
	RecipientEmail    string `json:"recipientEmail"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	CertificationDate string `json:"certificationDate"`
	DegreeLevel       string `json:"degreeLevel"`
	Faculty           string `json:"faculty"`
	Achievement       string `json:"achievement"`
	Style             string `json:"style"`
	PaymentIntentID   string `json:"paymentIntentId"`
	AmountPaid        int64  `json:"amountPaid"`
}

// webhookForwarder posts orders to a configured HTTP endpoint.
type webhookForwarder struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewWebhookForwarder creates a forwarder targeting the given URL.
// An empty URL disables forwarding.
func NewWebhookForwarder(url string, logger *slog.Logger) Forwarder {
	return &webhookForwarder{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Forward posts the order payload to the fulfillment webhook.
func (f *webhookForwarder) Forward(ctx context.Context, order *orderDomain.Order) error {
	if f.url == "" {
		f.logger.Debug("fulfillment forwarding disabled", slog.String("order_id", order.ID.String()))
		return nil
	}

	payload := fulfillmentPayload{
		Email:             order.BuyerEmail,
		BuyerEmail:        order.BuyerEmail,
		RecipientEmail:    order.RecipientEmail,
		FirstName:         order.Certificate.FirstName,
		LastName:          order.Certificate.LastName,
		CertificationDate: order.Certificate.CertificationDate,
		DegreeLevel:       order.Certificate.DegreeLevel,
		Faculty:           order.Certificate.Faculty,
		Achievement:       order.Certificate.Achievement,
		Style:             string(order.Certificate.Style),
		PaymentIntentID:   order.PaymentIntentID,
		AmountPaid:        order.AmountCents,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUpstream, "marshal fulfillment payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUpstream, "build fulfillment request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUpstream, "post fulfillment webhook: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apperrors.Wrapf(apperrors.ErrUpstream, "fulfillment webhook returned %d", resp.StatusCode)
	}

	f.logger.Info("order forwarded for fulfillment",
		slog.String("order_id", order.ID.String()),
		slog.String("payment_intent_id", order.PaymentIntentID),
	)
	return nil
}
