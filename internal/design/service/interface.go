// Package service provides the design-automation provider client.
package service

import (
	"context"

	"golang.org/x/oauth2"
)

// AutofillJob is the provider-neutral view of a template autofill job.
type AutofillJob struct {
	ID       string
	Status   string
	DesignID string
	EditURL  string
	Error    string
}

// ExportJob is the provider-neutral view of a design export job.
type ExportJob struct {
	ID     string
	Status string
	URLs   []string
	Error  string
}

// DesignClient talks to the design-automation provider's REST API.
//
// Jobs are asynchronous on the provider side: creation returns an in_progress
// job and the caller polls until the status settles on success or failed.
type DesignClient interface {
	// AuthorizeURL builds the provider authorize URL for the given state and
	// stores the PKCE verifier until the callback arrives.
	AuthorizeURL(state string) string

	// ExchangeCode trades the callback code plus the stored verifier for a
	// token. Unknown states are rejected as invalid input.
	ExchangeCode(ctx context.Context, state, code string) (*oauth2.Token, error)

	// CreateAutofillJob starts filling a brand template with the given
	// text fields.
	CreateAutofillJob(ctx context.Context, accessToken, templateID string, fields map[string]string) (*AutofillJob, error)

	// GetAutofillJob polls an autofill job.
	GetAutofillJob(ctx context.Context, accessToken, jobID string) (*AutofillJob, error)

	// CreateExportJob starts exporting a design as PDF.
	CreateExportJob(ctx context.Context, accessToken, designID string) (*ExportJob, error)

	// GetExportJob polls an export job.
	GetExportJob(ctx context.Context, accessToken, exportID string) (*ExportJob, error)
}
