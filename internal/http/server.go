// Package http provides the HTTP server and routing for the certificate shop.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	certificateHTTP "github.com/allisson/certmaker/internal/certificate/http"
	"github.com/allisson/certmaker/internal/config"
	designHTTP "github.com/allisson/certmaker/internal/design/http"
	"github.com/allisson/certmaker/internal/httputil"
	"github.com/allisson/certmaker/internal/metrics"
	orderHTTP "github.com/allisson/certmaker/internal/order/http"
	paymentHTTP "github.com/allisson/certmaker/internal/payment/http"
)

// Handlers groups the route handlers the server wires up.
type Handlers struct {
	Certificate *certificateHTTP.CertificateHandler
	Order       *orderHTTP.OrderHandler
	Payment     *paymentHTTP.PaymentHandler
	Design      *designHTTP.DesignHandler
}

// Server is the main HTTP server.
type Server struct {
	config     *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates the HTTP server with all routes and middleware wired.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	handlers Handlers,
) *Server {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	if cfg.CORSEnabled {
		router.Use(createCORSMiddleware(cfg))
	}
	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg, logger))
	}
	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.NoMethod(httputil.MethodNotAllowedHandler())
	router.NoRoute(httputil.NotFoundHandler())

	registerRoutes(router, cfg, logger, handlers)

	return &Server{
		config: cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// registerRoutes wires all endpoints. Order and design routes sit behind the
// static bearer token; render, styles, and the payment webhook follow their
// own caller contracts (webhook deliveries are signature-verified instead).
func registerRoutes(router *gin.Engine, cfg *config.Config, logger *slog.Logger, handlers Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	v1 := router.Group("/v1")

	v1.POST("/certificates/render", handlers.Certificate.Render)
	v1.GET("/certificates/styles", handlers.Certificate.ListStyles)

	v1.POST("/payments/webhook", handlers.Payment.Webhook)

	auth := BearerAuthMiddleware(cfg.APIToken, logger)

	orders := v1.Group("/orders", auth)
	orders.POST("", handlers.Order.Create)
	orders.GET("/:id", handlers.Order.Get)

	design := v1.Group("/design", auth)
	design.GET("/oauth/authorize", handlers.Design.Authorize)
	design.GET("/oauth/callback", handlers.Design.Callback)
	design.POST("/autofill", handlers.Design.CreateAutofill)
	design.GET("/autofill/:jobID", handlers.Design.GetAutofill)
	design.POST("/exports", handlers.Design.CreateExport)
	design.GET("/exports/:exportID", handlers.Design.GetExport)
}

// Start begins listening for requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting http server", slog.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
