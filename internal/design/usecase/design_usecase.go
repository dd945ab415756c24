// Package usecase manages the design provider connection and proxies its jobs.
package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	designService "github.com/allisson/certmaker/internal/design/service"
	apperrors "github.com/allisson/certmaker/internal/errors"
)

// DesignUseCase exposes the design-automation proxy operations.
//
// The service holds a single provider connection for the merchant account.
// The token lives in process memory, like orders.
type DesignUseCase interface {
	// ConnectURL generates a fresh state and returns the provider authorize URL.
	ConnectURL() (string, error)

	// CompleteConnection exchanges the callback code and stores the token.
	CompleteConnection(ctx context.Context, state, code string) error

	// CreateAutofill starts filling a brand template.
	CreateAutofill(ctx context.Context, templateID string, fields map[string]string) (*designService.AutofillJob, error)

	// GetAutofill polls an autofill job.
	GetAutofill(ctx context.Context, jobID string) (*designService.AutofillJob, error)

	// CreateExport starts a PDF export of a design.
	CreateExport(ctx context.Context, designID string) (*designService.ExportJob, error)

	// GetExport polls an export job.
	GetExport(ctx context.Context, exportID string) (*designService.ExportJob, error)
}

// designUseCase implements DesignUseCase.
type designUseCase struct {
	client designService.DesignClient
	logger *slog.Logger

	mu    sync.RWMutex
	token *oauth2.Token
}

// NewDesignUseCase creates a design use case.
func NewDesignUseCase(client designService.DesignClient, logger *slog.Logger) DesignUseCase {
	return &designUseCase{
		client: client,
		logger: logger,
	}
}

// ConnectURL generates a fresh state and returns the provider authorize URL.
func (u *designUseCase) ConnectURL() (string, error) {
	state, err := uuid.NewV7()
	if err != nil {
		return "", apperrors.Wrapf(apperrors.ErrUpstream, "generate oauth state: %v", err)
	}
	return u.client.AuthorizeURL(state.String()), nil
}

// CompleteConnection exchanges the callback code and stores the token.
func (u *designUseCase) CompleteConnection(ctx context.Context, state, code string) error {
	token, err := u.client.ExchangeCode(ctx, state, code)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.token = token
	u.mu.Unlock()

	u.logger.Info("design provider connected")
	return nil
}

// accessToken returns the stored access token, or empty when not connected.
// The client maps an empty token to ErrUnauthorized.
func (u *designUseCase) accessToken() string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.token == nil {
		return ""
	}
	return u.token.AccessToken
}

// CreateAutofill starts filling a brand template.
func (u *designUseCase) CreateAutofill(
	ctx context.Context,
	templateID string,
	fields map[string]string,
) (*designService.AutofillJob, error) {
	return u.client.CreateAutofillJob(ctx, u.accessToken(), templateID, fields)
}

// GetAutofill polls an autofill job.
func (u *designUseCase) GetAutofill(ctx context.Context, jobID string) (*designService.AutofillJob, error) {
	return u.client.GetAutofillJob(ctx, u.accessToken(), jobID)
}

// CreateExport starts a PDF export of a design.
func (u *designUseCase) CreateExport(ctx context.Context, designID string) (*designService.ExportJob, error) {
	return u.client.CreateExportJob(ctx, u.accessToken(), designID)
}

// GetExport polls an export job.
func (u *designUseCase) GetExport(ctx context.Context, exportID string) (*designService.ExportJob, error) {
	return u.client.GetExportJob(ctx, u.accessToken(), exportID)
}
