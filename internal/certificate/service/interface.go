// Package service implements certificate rendering: deriving display strings
// from the request, resolving background assets, and composing the final page.
package service

import (
	"context"

	"github.com/allisson/certmaker/internal/certificate/domain"
)

// AssetStore resolves background assets by name. Implementations may cache
// resolved bytes process-wide; assets are immutable once loaded.
type AssetStore interface {
	// Background returns the raw bytes of a background asset.
	// Returns ErrResourceMissing (listing every searched location) when the
	// asset cannot be found.
	Background(ctx context.Context, name string) ([]byte, error)
}

// Renderer composes a certificate document from a validated request.
// Rendering is stateless and side-effect-free; concurrent calls are independent.
type Renderer interface {
	// Render produces one complete page or no bytes at all.
	Render(ctx context.Context, req *domain.CertificateRequest) (*domain.RenderedCertificate, error)
}
