package usecase

import (
	"context"

	"github.com/allisson/certmaker/internal/certificate/domain"
	"github.com/allisson/certmaker/internal/certificate/service"
)

// certificateUseCase implements CertificateUseCase on top of the layout renderer.
type certificateUseCase struct {
	renderer service.Renderer
}

// NewCertificateUseCase creates the certificate use case.
func NewCertificateUseCase(renderer service.Renderer) CertificateUseCase {
	return &certificateUseCase{renderer: renderer}
}

// Render delegates to the layout renderer.
func (u *certificateUseCase) Render(
	ctx context.Context,
	req *domain.CertificateRequest,
) (*domain.RenderedCertificate, error) {
	return u.renderer.Render(ctx, req)
}

// Styles lists every enumerated style with its date-line configuration.
func (u *certificateUseCase) Styles() []StyleInfo {
	styles := domain.Styles()
	infos := make([]StyleInfo, 0, len(styles))

	for _, style := range styles {
		def, err := domain.Definition(style)
		if err != nil {
			// The style order and table are defined together; a miss here
			// would be a programming error, not a runtime condition.
			continue
		}
		infos = append(infos, StyleInfo{
			ID:          style,
			HasDateLine: def.Date != nil,
		})
	}

	return infos
}
