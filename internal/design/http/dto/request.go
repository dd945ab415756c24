// Package dto provides data transfer objects for design proxy HTTP handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/certmaker/internal/validation"
)

// CreateAutofillRequest asks the provider to fill a brand template.
type CreateAutofillRequest struct {
	TemplateID string            `json:"templateId"`
	Fields     map[string]string `json:"fields"`
}

// Validate checks if the create autofill request is valid.
func (r *CreateAutofillRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TemplateID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Fields, validation.Required),
	)
}

// CreateExportRequest asks the provider to export a design as PDF.
type CreateExportRequest struct {
	DesignID string `json:"designId"`
}

// Validate checks if the create export request is valid.
func (r *CreateExportRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DesignID, validation.Required, customValidation.NotBlank),
	)
}
