// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
	customValidation "github.com/allisson/certmaker/internal/validation"
)

// ValidStyle validates that a string is one of the enumerated styles.
var ValidStyle = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := certificateDomain.ParseStyle(s)
		return err == nil
	},
	validation.NewError("validation_style", "must be one of the supported styles"),
)

// RenderCertificateRequest contains the buyer-submitted certificate fields.
// certificationDate is the only optional field; when empty the date line is
// omitted from the rendered document.
type RenderCertificateRequest struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	CertificationDate string `json:"certificationDate"`
	DegreeLevel       string `json:"degreeLevel"`
	Faculty           string `json:"faculty"`
	Achievement       string `json:"achievement"`
	Style             string `json:"style"`
}

// Validate checks if the render certificate request is valid.
func (r *RenderCertificateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.LastName, validation.Required, customValidation.NotBlank),
		validation.Field(&r.DegreeLevel, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Faculty, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Achievement, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Style, validation.Required, ValidStyle),
	)
}

// ToDomain converts the request to the domain model.
// Must be called after Validate, so the style conversion cannot fail.
func (r *RenderCertificateRequest) ToDomain() *certificateDomain.CertificateRequest {
	return &certificateDomain.CertificateRequest{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		CertificationDate: r.CertificationDate,
		DegreeLevel:       r.DegreeLevel,
		Faculty:           r.Faculty,
		Achievement:       r.Achievement,
		Style:             certificateDomain.Style(r.Style),
	}
}
