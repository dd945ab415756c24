package service

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/allisson/certmaker/internal/certificate/domain"
	apperrors "github.com/allisson/certmaker/internal/errors"
)

// pdfContentType is the content-type tag returned with rendered documents.
const pdfContentType = "application/pdf"

// layoutRenderer composes a single fixed-size page: the style's background
// stretched to fill the page, with each text slot drawn centered at its
// configured offset from the bottom edge.
type layoutRenderer struct {
	assets AssetStore
}

// NewLayoutRenderer creates a renderer backed by the given asset store.
func NewLayoutRenderer(assets AssetStore) Renderer {
	return &layoutRenderer{assets: assets}
}

// Render produces the certificate document for a validated request.
// Identical input always produces identical output: the document creation
// date is pinned and the catalog is sorted so the serialized bytes are
// reproducible.
func (r *layoutRenderer) Render(
	ctx context.Context,
	req *domain.CertificateRequest,
) (*domain.RenderedCertificate, error) {
	def, err := domain.Definition(req.Style)
	if err != nil {
		return nil, err
	}

	background, err := r.assets.Background(ctx, def.Background)
	if err != nil {
		return nil, err
	}

	text := CompileText(req, def.Transform)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: domain.PageWidth, Ht: domain.PageHeight},
	})
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetCatalogSort(true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Stretch the background to exactly fill the page bounds.
	opts := gofpdf.ImageOptions{ImageType: imageType(def.Background)}
	pdf.RegisterImageOptionsReader(def.Background, opts, bytes.NewReader(background))
	pdf.ImageOptions(def.Background, 0, 0, domain.PageWidth, domain.PageHeight, false, opts, 0, "")

	pdf.SetTextColor(0, 0, 0)

	if err := drawSlot(pdf, def.Name, text.FullName); err != nil {
		return nil, err
	}
	// The date line is skipped when the style has no slot for it, and also
	// when the derived string is empty (no certification date submitted).
	if def.Date != nil && text.DateLine != "" {
		if err := drawSlot(pdf, *def.Date, text.DateLine); err != nil {
			return nil, err
		}
	}
	if err := drawSlot(pdf, def.Degree, text.DegreeLine); err != nil {
		return nil, err
	}
	if err := drawSlot(pdf, def.Achievement, text.AchievementLine); err != nil {
		return nil, err
	}

	if pdf.Err() {
		return nil, apperrors.Wrap(apperrors.ErrRenderFailed, pdf.Error().Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRenderFailed, err.Error())
	}

	return &domain.RenderedCertificate{
		Bytes:       buf.Bytes(),
		ContentType: pdfContentType,
	}, nil
}

// drawSlot draws one string horizontally centered at the slot's vertical offset.
func drawSlot(pdf *gofpdf.Fpdf, slot domain.TextSlot, text string) error {
	family, style, ok := slot.Font.Face()
	if !ok {
		return domain.ErrUnknownFont
	}

	pdf.SetFont(family, style, slot.Size)
	width := pdf.GetStringWidth(text)
	if pdf.Err() {
		return apperrors.Wrapf(apperrors.ErrRenderFailed, "measuring %q: %v", text, pdf.Error())
	}

	x := centeredX(domain.PageWidth, width)
	y := domain.PageHeight - slot.OffsetY
	pdf.Text(x, y, text)
	return nil
}

// centeredX computes the left anchor so the string is horizontally centered.
func centeredX(pageWidth, textWidth float64) float64 {
	return (pageWidth - textWidth) / 2
}

// imageType maps an asset file extension to a gofpdf image type tag.
func imageType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}
