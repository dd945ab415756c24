// Package http provides HTTP handlers for certificate operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/certmaker/internal/certificate/http/dto"
	certificateUseCase "github.com/allisson/certmaker/internal/certificate/usecase"
	"github.com/allisson/certmaker/internal/httputil"
	"github.com/allisson/certmaker/internal/validation"
)

// CertificateHandler handles certificate HTTP requests.
type CertificateHandler struct {
	useCase certificateUseCase.CertificateUseCase
	logger  *slog.Logger
}

// NewCertificateHandler creates a new certificate handler.
func NewCertificateHandler(
	useCase certificateUseCase.CertificateUseCase,
	logger *slog.Logger,
) *CertificateHandler {
	return &CertificateHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// Render handles POST /v1/certificates/render.
// The response body is the PDF itself, not a JSON envelope.
func (h *CertificateHandler) Render(c *gin.Context) {
	var request dto.RenderCertificateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, validation.WrapValidationError(err), h.logger)
		return
	}

	doc, err := h.useCase.Render(c.Request.Context(), request.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
}

// ListStyles handles GET /v1/certificates/styles.
func (h *CertificateHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapStylesToResponse(h.useCase.Styles()))
}
