// Package dto provides data transfer objects for order HTTP handling.
package dto

import (
	validation "github.com/jellydator/validation"

	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
	certificateDTO "github.com/allisson/certmaker/internal/certificate/http/dto"
	orderDomain "github.com/allisson/certmaker/internal/order/domain"
	customValidation "github.com/allisson/certmaker/internal/validation"
)

// CreateOrderRequest contains the certificate fields plus optional contact
// emails. buyerEmail receives the payment receipt; recipientEmail is where the
// finished certificate is sent when it differs from the buyer.
type CreateOrderRequest struct {
	BuyerEmail        string `json:"buyerEmail"`
	RecipientEmail    string `json:"recipientEmail"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	CertificationDate string `json:"certificationDate"`
	DegreeLevel       string `json:"degreeLevel"`
	Faculty           string `json:"faculty"`
	Achievement       string `json:"achievement"`
	Style             string `json:"style"`
}

// Validate checks if the create order request is valid.
func (r *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BuyerEmail, validation.Skip.When(r.BuyerEmail == ""), customValidation.Email),
		validation.Field(&r.RecipientEmail, validation.Skip.When(r.RecipientEmail == ""), customValidation.Email),
		validation.Field(&r.FirstName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.LastName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.DegreeLevel, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Faculty, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Achievement, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Style, validation.Required, certificateDTO.ValidStyle),
	)
}

// ToDomain converts the request to the domain model.
func (r *CreateOrderRequest) ToDomain() *orderDomain.Order {
	return &orderDomain.Order{
		BuyerEmail:     r.BuyerEmail,
		RecipientEmail: r.RecipientEmail,
		Certificate: certificateDomain.CertificateRequest{
			FirstName:         r.FirstName,
			LastName:          r.LastName,
			CertificationDate: r.CertificationDate,
			DegreeLevel:       r.DegreeLevel,
			Faculty:           r.Faculty,
			Achievement:       r.Achievement,
			Style:             certificateDomain.Style(r.Style),
		},
	}
}
