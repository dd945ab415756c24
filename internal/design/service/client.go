package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/allisson/certmaker/internal/errors"
)

// restDesignClient implements DesignClient against a Canva-style REST API.
type restDesignClient struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	verifiers  sync.Map // state -> PKCE verifier
}

// ClientOptions configures the design client.
type ClientOptions struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	APIBaseURL   string
}

// NewRESTDesignClient creates a design client for the configured provider.
func NewRESTDesignClient(opts ClientOptions) DesignClient {
	return &restDesignClient{
		oauth: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  opts.AuthURL,
				TokenURL: opts.TokenURL,
			},
		},
		apiBaseURL: opts.APIBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthorizeURL builds the provider authorize URL and stores the PKCE verifier.
func (c *restDesignClient) AuthorizeURL(state string) string {
	verifier := oauth2.GenerateVerifier()
	c.verifiers.Store(state, verifier)
	return c.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

// ExchangeCode trades the callback code plus the stored verifier for a token.
func (c *restDesignClient) ExchangeCode(ctx context.Context, state, code string) (*oauth2.Token, error) {
	value, ok := c.verifiers.LoadAndDelete(state)
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown oauth state")
	}
	verifier := value.(string)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "oauth code exchange: %v", err)
	}
	return token, nil
}

// autofillJobEnvelope mirrors the provider's autofill job JSON.
type autofillJobEnvelope struct {
	Job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Result struct {
			Design struct {
				ID      string `json:"id"`
				EditURL string `json:"edit_url"`
			} `json:"design"`
		} `json:"result"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"job"`
}

// exportJobEnvelope mirrors the provider's export job JSON.
type exportJobEnvelope struct {
	Job struct {
		ID     string   `json:"id"`
		Status string   `json:"status"`
		URLs   []string `json:"urls"`
		Error  struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"job"`
}

// CreateAutofillJob starts filling a brand template with the given fields.
func (c *restDesignClient) CreateAutofillJob(
	ctx context.Context,
	accessToken, templateID string,
	fields map[string]string,
) (*AutofillJob, error) {
	data := make(map[string]map[string]string, len(fields))
	for name, text := range fields {
		data[name] = map[string]string{"type": "text", "text": text}
	}
	body := map[string]any{
		"brand_template_id": templateID,
		"data":              data,
	}

	var envelope autofillJobEnvelope
	if err := c.doJSON(ctx, accessToken, http.MethodPost, "/autofills", body, &envelope); err != nil {
		return nil, err
	}
	return mapAutofillJob(&envelope), nil
}

// GetAutofillJob polls an autofill job.
func (c *restDesignClient) GetAutofillJob(
	ctx context.Context,
	accessToken, jobID string,
) (*AutofillJob, error) {
	var envelope autofillJobEnvelope
	if err := c.doJSON(ctx, accessToken, http.MethodGet, "/autofills/"+jobID, nil, &envelope); err != nil {
		return nil, err
	}
	return mapAutofillJob(&envelope), nil
}

// CreateExportJob starts exporting a design as PDF.
func (c *restDesignClient) CreateExportJob(
	ctx context.Context,
	accessToken, designID string,
) (*ExportJob, error) {
	body := map[string]any{
		"design_id": designID,
		"format":    map[string]string{"type": "pdf"},
	}

	var envelope exportJobEnvelope
	if err := c.doJSON(ctx, accessToken, http.MethodPost, "/exports", body, &envelope); err != nil {
		return nil, err
	}
	return mapExportJob(&envelope), nil
}

// GetExportJob polls an export job.
func (c *restDesignClient) GetExportJob(
	ctx context.Context,
	accessToken, exportID string,
) (*ExportJob, error) {
	var envelope exportJobEnvelope
	if err := c.doJSON(ctx, accessToken, http.MethodGet, "/exports/"+exportID, nil, &envelope); err != nil {
		return nil, err
	}
	return mapExportJob(&envelope), nil
}

// doJSON performs an authenticated JSON request against the provider API.
func (c *restDesignClient) doJSON(
	ctx context.Context,
	accessToken, method, path string,
	body any,
	out any,
) error {
	if accessToken == "" {
		return apperrors.Wrap(apperrors.ErrUnauthorized, "design provider not connected")
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrapf(apperrors.ErrUpstream, "marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBaseURL+path, reader)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUpstream, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUpstream, "call design provider: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Wrap(apperrors.ErrUnauthorized, "design provider rejected the token")
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.Wrapf(apperrors.ErrNotFound, "design provider resource %s", path)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return apperrors.Wrapf(apperrors.ErrUpstream, "design provider returned %d for %s %s", resp.StatusCode, method, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(apperrors.ErrUpstream, "decode design provider response: %v", err)
	}
	return nil
}

func mapAutofillJob(envelope *autofillJobEnvelope) *AutofillJob {
	return &AutofillJob{
		ID:       envelope.Job.ID,
		Status:   envelope.Job.Status,
		DesignID: envelope.Job.Result.Design.ID,
		EditURL:  envelope.Job.Result.Design.EditURL,
		Error:    envelope.Job.Error.Message,
	}
}

func mapExportJob(envelope *exportJobEnvelope) *ExportJob {
	return &ExportJob{
		ID:     envelope.Job.ID,
		Status: envelope.Job.Status,
		URLs:   envelope.Job.URLs,
		Error:  envelope.Job.Error.Message,
	}
}
