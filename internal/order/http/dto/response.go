package dto

import (
	"time"

	orderDomain "github.com/allisson/certmaker/internal/order/domain"
)

// OrderResponse is the API view of an order.
// clientSecret is only populated on creation responses.
type OrderResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	AmountCents     int64     `json:"amountCents"`
	Currency        string    `json:"currency"`
	PaymentIntentID string    `json:"paymentIntentId"`
	ClientSecret    string    `json:"clientSecret,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// MapOrderToResponse converts an order to its API representation,
// including the client secret.
func MapOrderToResponse(order *orderDomain.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID.String(),
		Status:          string(order.Status),
		AmountCents:     order.AmountCents,
		Currency:        order.Currency,
		PaymentIntentID: order.PaymentIntentID,
		ClientSecret:    order.ClientSecret,
		CreatedAt:       order.CreatedAt,
	}
}

// MapOrderToPublicResponse converts an order without the client secret,
// for lookups after creation.
func MapOrderToPublicResponse(order *orderDomain.Order) OrderResponse {
	response := MapOrderToResponse(order)
	response.ClientSecret = ""
	return response
}
