package usecase

import (
	"context"
	"time"

	"github.com/allisson/certmaker/internal/certificate/domain"
	"github.com/allisson/certmaker/internal/metrics"
)

// certificateUseCaseWithMetrics decorates CertificateUseCase with metrics instrumentation.
type certificateUseCaseWithMetrics struct {
	next    CertificateUseCase
	metrics metrics.BusinessMetrics
}

// NewCertificateUseCaseWithMetrics wraps a CertificateUseCase with metrics recording.
func NewCertificateUseCaseWithMetrics(
	useCase CertificateUseCase,
	m metrics.BusinessMetrics,
) CertificateUseCase {
	return &certificateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Render records metrics for certificate render operations.
func (c *certificateUseCaseWithMetrics) Render(
	ctx context.Context,
	req *domain.CertificateRequest,
) (*domain.RenderedCertificate, error) {
	start := time.Now()
	doc, err := c.next.Render(ctx, req)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "renderer", "certificate_render", status)
	c.metrics.RecordDuration(ctx, "renderer", "certificate_render", time.Since(start), status)

	return doc, err
}

// Styles passes through without instrumentation; it reads a static table.
func (c *certificateUseCaseWithMetrics) Styles() []StyleInfo {
	return c.next.Styles()
}
