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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	certificateDomain "github.com/allisson/certmaker/internal/certificate/domain"
	apperrors "github.com/allisson/certmaker/internal/errors"
	"github.com/allisson/certmaker/internal/order/domain"
)

type fakeOrderUseCase struct {
	order *domain.Order
	err   error
	seen  *domain.Order
}

func (f *fakeOrderUseCase) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.seen = order
	return f.order, f.err
}

func (f *fakeOrderUseCase) Get(_ context.Context, _ uuid.UUID) (*domain.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderUseCase) MarkPaid(_ context.Context, _ string) (*domain.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderUseCase) MarkFulfilled(_ context.Context, _ string) (*domain.Order, error) {
	return f.order, f.err
}

func setupRouter(useCase *fakeOrderUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewOrderHandler(useCase, slog.Default())

	router := gin.New()
	router.POST("/v1/orders", handler.Create)
	router.GET("/v1/orders/:id", handler.Get)
	return router
}

func orderBody(t *testing.T, overrides map[string]any) []byte {
	t.Helper()

	body := map[string]any{
		"buyerEmail":  "buyer@example.com",
		"firstName":   "Jane",
		"lastName":    "Doe",
		"degreeLevel": "Bachelor",
		"faculty":     "Nonsense Studies",
		"achievement": "Dog Walking",
		"style":       "classic",
	}
	for k, v := range overrides {
		body[k] = v
	}

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return payload
}

func storedOrder() *domain.Order {
	return &domain.Order{
		ID:              uuid.New(),
		BuyerEmail:      "buyer@example.com",
		PaymentIntentID: "pi_1",
		ClientSecret:    "pi_1_secret",
		AmountCents:     999,
		Currency:        "usd",
		Status:          domain.StatusPending,
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	t.Run("returns 201 with the client secret", func(t *testing.T) {
		useCase := &fakeOrderUseCase{order: storedOrder()}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(orderBody(t, nil)))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusCreated, resp.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, "pending", payload["status"])
		assert.Equal(t, "pi_1_secret", payload["clientSecret"])
		assert.Equal(t, float64(999), payload["amountCents"])

		require.NotNil(t, useCase.seen)
		assert.Equal(t, certificateDomain.StyleClassic, useCase.seen.Certificate.Style)
	})

	t.Run("buyer email is optional", func(t *testing.T) {
		useCase := &fakeOrderUseCase{order: storedOrder()}
		router := setupRouter(useCase)

		body := orderBody(t, map[string]any{"buyerEmail": ""})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("rejects a malformed buyer email", func(t *testing.T) {
		router := setupRouter(&fakeOrderUseCase{})

		body := orderBody(t, map[string]any{"buyerEmail": "not-an-email"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "invalid_input")
	})

	t.Run("rejects an unknown style", func(t *testing.T) {
		router := setupRouter(&fakeOrderUseCase{})

		body := orderBody(t, map[string]any{"style": "baroque"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("payment provider failure maps to 502", func(t *testing.T) {
		useCase := &fakeOrderUseCase{err: apperrors.Wrap(apperrors.ErrUpstream, "stripe down")}
		router := setupRouter(useCase)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewReader(orderBody(t, nil)))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadGateway, resp.Code)
		assert.Contains(t, resp.Body.String(), "upstream_error")
	})
}

func TestOrderHandlerGet(t *testing.T) {
	t.Run("returns the order without the client secret", func(t *testing.T) {
		order := storedOrder()
		router := setupRouter(&fakeOrderUseCase{order: order})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+order.ID.String(), nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
		assert.Equal(t, order.ID.String(), payload["id"])
		_, hasSecret := payload["clientSecret"]
		assert.False(t, hasSecret)
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		router := setupRouter(&fakeOrderUseCase{})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/not-a-uuid", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("missing order returns 404", func(t *testing.T) {
		router := setupRouter(&fakeOrderUseCase{err: apperrors.Wrap(apperrors.ErrNotFound, "order")})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+uuid.NewString(), nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
