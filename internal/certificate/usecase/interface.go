// Package usecase orchestrates certificate rendering for the HTTP layer.
package usecase

import (
	"context"

	"github.com/allisson/certmaker/internal/certificate/domain"
)

// StyleInfo describes one selectable style for API listings.
type StyleInfo struct {
	ID          domain.Style
	HasDateLine bool
}

// CertificateUseCase exposes certificate operations to handlers.
type CertificateUseCase interface {
	// Render validates the style, derives the display strings, and produces
	// the final document. Errors follow the renderer taxonomy and are never
	// swallowed.
	Render(ctx context.Context, req *domain.CertificateRequest) (*domain.RenderedCertificate, error)

	// Styles lists the enumerated styles in stable order.
	Styles() []StyleInfo
}
