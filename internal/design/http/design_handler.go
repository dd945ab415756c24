// Package http provides HTTP handlers for the design-automation proxy.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/certmaker/internal/design/http/dto"
	designUseCase "github.com/allisson/certmaker/internal/design/usecase"
	apperrors "github.com/allisson/certmaker/internal/errors"
	"github.com/allisson/certmaker/internal/httputil"
	"github.com/allisson/certmaker/internal/validation"
)

// DesignHandler handles design proxy HTTP requests.
type DesignHandler struct {
	useCase designUseCase.DesignUseCase
	logger  *slog.Logger
}

// NewDesignHandler creates a new design handler.
func NewDesignHandler(useCase designUseCase.DesignUseCase, logger *slog.Logger) *DesignHandler {
	return &DesignHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// Authorize handles GET /v1/design/oauth/authorize.
func (h *DesignHandler) Authorize(c *gin.Context) {
	url, err := h.useCase.ConnectURL()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorizeURLResponse{URL: url})
}

// Callback handles GET /v1/design/oauth/callback.
func (h *DesignHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "state and code are required"), h.logger)
		return
	}

	if err := h.useCase.CompleteConnection(c.Request.Context(), state, code); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ConnectionResponse{Connected: true})
}

// CreateAutofill handles POST /v1/design/autofill.
func (h *DesignHandler) CreateAutofill(c *gin.Context) {
	var request dto.CreateAutofillRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, validation.WrapValidationError(err), h.logger)
		return
	}

	job, err := h.useCase.CreateAutofill(c.Request.Context(), request.TemplateID, request.Fields)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusAccepted, dto.MapAutofillJobToResponse(job))
}

// GetAutofill handles GET /v1/design/autofill/:jobID.
func (h *DesignHandler) GetAutofill(c *gin.Context) {
	job, err := h.useCase.GetAutofill(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAutofillJobToResponse(job))
}

// CreateExport handles POST /v1/design/exports.
func (h *DesignHandler) CreateExport(c *gin.Context) {
	var request dto.CreateExportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, validation.WrapValidationError(err), h.logger)
		return
	}

	job, err := h.useCase.CreateExport(c.Request.Context(), request.DesignID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusAccepted, dto.MapExportJobToResponse(job))
}

// GetExport handles GET /v1/design/exports/:exportID.
func (h *DesignHandler) GetExport(c *gin.Context) {
	job, err := h.useCase.GetExport(c.Request.Context(), c.Param("exportID"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExportJobToResponse(job))
}
