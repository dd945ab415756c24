package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/certmaker/internal/certificate/domain"
	apperrors "github.com/allisson/certmaker/internal/errors"
)

// fakeRenderer returns a canned result or error.
type fakeRenderer struct {
	doc  *domain.RenderedCertificate
	err  error
	seen *domain.CertificateRequest
}

func (f *fakeRenderer) Render(
	_ context.Context,
	req *domain.CertificateRequest,
) (*domain.RenderedCertificate, error) {
	f.seen = req
	return f.doc, f.err
}

func TestCertificateUseCaseRender(t *testing.T) {
	t.Run("delegates to the renderer", func(t *testing.T) {
		renderer := &fakeRenderer{
			doc: &domain.RenderedCertificate{Bytes: []byte("%PDF"), ContentType: "application/pdf"},
		}
		useCase := NewCertificateUseCase(renderer)

		req := &domain.CertificateRequest{FirstName: "Jane", LastName: "Doe", Style: domain.StyleClassic}
		doc, err := useCase.Render(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, renderer.doc, doc)
		assert.Equal(t, req, renderer.seen)
	})

	t.Run("propagates renderer errors", func(t *testing.T) {
		renderer := &fakeRenderer{err: apperrors.Wrap(apperrors.ErrResourceMissing, "background")}
		useCase := NewCertificateUseCase(renderer)

		doc, err := useCase.Render(context.Background(), &domain.CertificateRequest{})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrResourceMissing))
		assert.Nil(t, doc)
	})
}

func TestCertificateUseCaseStyles(t *testing.T) {
	useCase := NewCertificateUseCase(&fakeRenderer{})

	infos := useCase.Styles()
	require.Len(t, infos, len(domain.Styles()))

	byID := make(map[domain.Style]StyleInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}

	// Date-line presence matches the style table
	assert.True(t, byID[domain.StyleClassic].HasDateLine)
	assert.False(t, byID[domain.StyleTech].HasDateLine)

	// Stable order
	assert.Equal(t, domain.StyleClassic, infos[0].ID)
}
