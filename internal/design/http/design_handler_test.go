package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	designService "github.com/allisson/certmaker/internal/design/service"
	apperrors "github.com/allisson/certmaker/internal/errors"
)

type fakeDesignUseCase struct {
	url        string
	connectErr error
	autofill   *designService.AutofillJob
	export     *designService.ExportJob
	err        error
	seenState  string
	seenCode   string
	seenFields map[string]string
	seenJobID  string
	seenDesign string
	seenExport string
	seenCreate string
}

func (f *fakeDesignUseCase) ConnectURL() (string, error) {
	return f.url, f.err
}

func (f *fakeDesignUseCase) CompleteConnection(_ context.Context, state, code string) error {
	f.seenState = state
	f.seenCode = code
	return f.connectErr
}

func (f *fakeDesignUseCase) CreateAutofill(
	_ context.Context,
	templateID string,
	fields map[string]string,
) (*designService.AutofillJob, error) {
	f.seenCreate = templateID
	f.seenFields = fields
	return f.autofill, f.err
}

func (f *fakeDesignUseCase) GetAutofill(_ context.Context, jobID string) (*designService.AutofillJob, error) {
	f.seenJobID = jobID
	return f.autofill, f.err
}

func (f *fakeDesignUseCase) CreateExport(_ context.Context, designID string) (*designService.ExportJob, error) {
	f.seenDesign = designID
	return f.export, f.err
}

func (f *fakeDesignUseCase) GetExport(_ context.Context, exportID string) (*designService.ExportJob, error) {
	f.seenExport = exportID
	return f.export, f.err
}

func setupRouter(useCase *fakeDesignUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewDesignHandler(useCase, slog.Default())

	router := gin.New()
	router.GET("/v1/design/oauth/authorize", handler.Authorize)
	router.GET("/v1/design/oauth/callback", handler.Callback)
	router.POST("/v1/design/autofill", handler.CreateAutofill)
	router.GET("/v1/design/autofill/:jobID", handler.GetAutofill)
	router.POST("/v1/design/exports", handler.CreateExport)
	router.GET("/v1/design/exports/:exportID", handler.GetExport)
	return router
}

func TestDesignHandlerOAuth(t *testing.T) {
	t.Run("authorize returns the provider url", func(t *testing.T) {
		router := setupRouter(&fakeDesignUseCase{url: "https://provider.example.com/oauth/authorize?state=s1"})

		req := httptest.NewRequest(http.MethodGet, "/v1/design/oauth/authorize", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "provider.example.com")
	})

	t.Run("callback completes the connection", func(t *testing.T) {
		useCase := &fakeDesignUseCase{}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/design/oauth/callback?state=s1&code=c1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "s1", useCase.seenState)
		assert.Equal(t, "c1", useCase.seenCode)
		assert.Contains(t, resp.Body.String(), `"connected":true`)
	})

	t.Run("callback without state or code is 400", func(t *testing.T) {
		router := setupRouter(&fakeDesignUseCase{})

		req := httptest.NewRequest(http.MethodGet, "/v1/design/oauth/callback?code=c1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("unknown state maps to 400", func(t *testing.T) {
		useCase := &fakeDesignUseCase{connectErr: apperrors.Wrap(apperrors.ErrInvalidInput, "unknown oauth state")}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/design/oauth/callback?state=bad&code=c1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestDesignHandlerAutofill(t *testing.T) {
	t.Run("create returns 202 with the job", func(t *testing.T) {
		useCase := &fakeDesignUseCase{autofill: &designService.AutofillJob{ID: "job_1", Status: "in_progress"}}
		router := setupRouter(useCase)

		body, err := json.Marshal(map[string]any{
			"templateId": "tpl_1",
			"fields":     map[string]string{"name": "Jane Doe"},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/design/autofill", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusAccepted, resp.Code)
		assert.Equal(t, "tpl_1", useCase.seenCreate)
		assert.Equal(t, "Jane Doe", useCase.seenFields["name"])
		assert.Contains(t, resp.Body.String(), "job_1")
	})

	t.Run("missing template id is 400", func(t *testing.T) {
		router := setupRouter(&fakeDesignUseCase{})

		body := []byte(`{"fields":{"name":"Jane"}}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/design/autofill", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("not connected maps to 401", func(t *testing.T) {
		useCase := &fakeDesignUseCase{err: apperrors.Wrap(apperrors.ErrUnauthorized, "design provider not connected")}
		router := setupRouter(useCase)

		body := []byte(`{"templateId":"tpl_1","fields":{"name":"Jane"}}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/design/autofill", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("poll passes the job id through", func(t *testing.T) {
		useCase := &fakeDesignUseCase{
			autofill: &designService.AutofillJob{ID: "job_1", Status: "success", DesignID: "design_1"},
		}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/design/autofill/job_1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "job_1", useCase.seenJobID)
		assert.Contains(t, resp.Body.String(), "design_1")
	})
}

func TestDesignHandlerExports(t *testing.T) {
	t.Run("create returns 202", func(t *testing.T) {
		useCase := &fakeDesignUseCase{export: &designService.ExportJob{ID: "exp_1", Status: "in_progress"}}
		router := setupRouter(useCase)

		body := []byte(`{"designId":"design_1"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/design/exports", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusAccepted, resp.Code)
		assert.Equal(t, "design_1", useCase.seenDesign)
	})

	t.Run("poll surfaces download urls", func(t *testing.T) {
		useCase := &fakeDesignUseCase{
			export: &designService.ExportJob{ID: "exp_1", Status: "success", URLs: []string{"https://cdn.example.com/exp_1.pdf"}},
		}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/design/exports/exp_1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "exp_1", useCase.seenExport)
		assert.Contains(t, resp.Body.String(), "cdn.example.com")
	})

	t.Run("unknown export is 404", func(t *testing.T) {
		useCase := &fakeDesignUseCase{err: apperrors.Wrap(apperrors.ErrNotFound, "export")}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/design/exports/exp_missing", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
