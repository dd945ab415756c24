package dto

import (
	designService "github.com/allisson/certmaker/internal/design/service"
)

// AuthorizeURLResponse carries the provider authorize URL.
type AuthorizeURLResponse struct {
	URL string `json:"url"`
}

// ConnectionResponse acknowledges a completed OAuth exchange.
type ConnectionResponse struct {
	Connected bool `json:"connected"`
}

// AutofillJobResponse is the API view of an autofill job.
type AutofillJobResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	DesignID string `json:"designId,omitempty"`
	EditURL  string `json:"editUrl,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ExportJobResponse is the API view of an export job.
type ExportJobResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	URLs   []string `json:"urls,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// MapAutofillJobToResponse converts an autofill job to its API representation.
func MapAutofillJobToResponse(job *designService.AutofillJob) AutofillJobResponse {
	return AutofillJobResponse{
		ID:       job.ID,
		Status:   job.Status,
		DesignID: job.DesignID,
		EditURL:  job.EditURL,
		Error:    job.Error,
	}
}

// MapExportJobToResponse converts an export job to its API representation.
func MapExportJobToResponse(job *designService.ExportJob) ExportJobResponse {
	return ExportJobResponse{
		ID:     job.ID,
		Status: job.Status,
		URLs:   job.URLs,
		Error:  job.Error,
	}
}
