// Package app provides lazy dependency injection for the application.
package app

import (
	"context"
	"log/slog"
	"os"
	"sync"

	certificateHTTP "github.com/allisson/certmaker/internal/certificate/http"
	certificateService "github.com/allisson/certmaker/internal/certificate/service"
	certificateUseCase "github.com/allisson/certmaker/internal/certificate/usecase"
	"github.com/allisson/certmaker/internal/config"
	designHTTP "github.com/allisson/certmaker/internal/design/http"
	designService "github.com/allisson/certmaker/internal/design/service"
	designUseCase "github.com/allisson/certmaker/internal/design/usecase"
	fulfillmentService "github.com/allisson/certmaker/internal/fulfillment/service"
	internalHTTP "github.com/allisson/certmaker/internal/http"
	"github.com/allisson/certmaker/internal/metrics"
	orderHTTP "github.com/allisson/certmaker/internal/order/http"
	orderRepository "github.com/allisson/certmaker/internal/order/repository"
	orderUseCase "github.com/allisson/certmaker/internal/order/usecase"
	paymentHTTP "github.com/allisson/certmaker/internal/payment/http"
	paymentService "github.com/allisson/certmaker/internal/payment/service"
	paymentUseCase "github.com/allisson/certmaker/internal/payment/usecase"
)

// Container holds all application dependencies, created lazily.
type Container struct {
	config *config.Config

	loggerOnce sync.Once
	logger     *slog.Logger

	metricsProviderOnce sync.Once
	metricsProvider     *metrics.Provider

	businessMetricsOnce sync.Once
	businessMetrics     metrics.BusinessMetrics

	assetStoreOnce sync.Once
	assetStore     *certificateService.BlobAssetStore

	rendererOnce sync.Once
	renderer     certificateService.Renderer

	certificateUseCaseOnce sync.Once
	certificateUseCase     certificateUseCase.CertificateUseCase

	orderRepositoryOnce sync.Once
	orderRepository     orderRepository.OrderRepository

	paymentProviderOnce sync.Once
	paymentProvider     paymentService.PaymentProvider

	orderUseCaseOnce sync.Once
	orderUseCase     orderUseCase.OrderUseCase

	signatureVerifierOnce sync.Once
	signatureVerifier     paymentService.SignatureVerifier

	forwarderOnce sync.Once
	forwarder     fulfillmentService.Forwarder

	paymentUseCaseOnce sync.Once
	paymentUseCase     paymentUseCase.PaymentUseCase

	designClientOnce sync.Once
	designClient     designService.DesignClient

	designUseCaseOnce sync.Once
	designUseCase     designUseCase.DesignUseCase

	serverOnce sync.Once
	server     *internalHTTP.Server

	metricsServerOnce sync.Once
	metricsServer     *internalHTTP.MetricsServer
}

// NewContainer creates a new dependency container.
func NewContainer(cfg *config.Config) *Container {
	return &Container{config: cfg}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the application logger.
func (c *Container) Logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		var level slog.Level
		switch c.config.LogLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		c.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() *metrics.Provider {
	c.metricsProviderOnce.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}

		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.Logger().Error("failed to create metrics provider", slog.Any("error", err))
			return
		}
		c.metricsProvider = provider
	})
	return c.metricsProvider
}

// BusinessMetrics returns the business metrics recorder, or nil when disabled.
func (c *Container) BusinessMetrics() metrics.BusinessMetrics {
	c.businessMetricsOnce.Do(func() {
		provider := c.MetricsProvider()
		if provider == nil {
			return
		}

		recorder, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.Logger().Error("failed to create business metrics", slog.Any("error", err))
			return
		}
		c.businessMetrics = recorder
	})
	return c.businessMetrics
}

// AssetStore returns the background asset store.
func (c *Container) AssetStore() *certificateService.BlobAssetStore {
	c.assetStoreOnce.Do(func() {
		c.assetStore = certificateService.NewBlobAssetStore(c.config.AssetLocations)
	})
	return c.assetStore
}

// Renderer returns the certificate renderer.
func (c *Container) Renderer() certificateService.Renderer {
	c.rendererOnce.Do(func() {
		c.renderer = certificateService.NewLayoutRenderer(c.AssetStore())
	})
	return c.renderer
}

// CertificateUseCase returns the certificate use case,
// instrumented when metrics are enabled.
func (c *Container) CertificateUseCase() certificateUseCase.CertificateUseCase {
	c.certificateUseCaseOnce.Do(func() {
		useCase := certificateUseCase.NewCertificateUseCase(c.Renderer())
		if recorder := c.BusinessMetrics(); recorder != nil {
			useCase = certificateUseCase.NewCertificateUseCaseWithMetrics(useCase, recorder)
		}
		c.certificateUseCase = useCase
	})
	return c.certificateUseCase
}

// OrderRepository returns the in-memory order repository.
func (c *Container) OrderRepository() orderRepository.OrderRepository {
	c.orderRepositoryOnce.Do(func() {
		c.orderRepository = orderRepository.NewMemoryOrderRepository()
	})
	return c.orderRepository
}

// PaymentProvider returns the Stripe payment provider.
func (c *Container) PaymentProvider() paymentService.PaymentProvider {
	c.paymentProviderOnce.Do(func() {
		c.paymentProvider = paymentService.NewStripeProvider(c.config.StripeSecretKey)
	})
	return c.paymentProvider
}

// OrderUseCase returns the order use case.
func (c *Container) OrderUseCase() orderUseCase.OrderUseCase {
	c.orderUseCaseOnce.Do(func() {
		c.orderUseCase = orderUseCase.NewOrderUseCase(
			c.OrderRepository(),
			c.PaymentProvider(),
			c.config.CertificatePriceCents,
			c.config.CertificateCurrency,
			c.Logger(),
		)
	})
	return c.orderUseCase
}

// SignatureVerifier returns the webhook signature verifier.
func (c *Container) SignatureVerifier() paymentService.SignatureVerifier {
	c.signatureVerifierOnce.Do(func() {
		c.signatureVerifier = paymentService.NewStripeSignatureVerifier(c.config.StripeWebhookSecret)
	})
	return c.signatureVerifier
}

// Forwarder returns the fulfillment forwarder.
func (c *Container) Forwarder() fulfillmentService.Forwarder {
	c.forwarderOnce.Do(func() {
		c.forwarder = fulfillmentService.NewWebhookForwarder(c.config.FulfillmentWebhookURL, c.Logger())
	})
	return c.forwarder
}

// PaymentUseCase returns the payment webhook use case.
func (c *Container) PaymentUseCase() paymentUseCase.PaymentUseCase {
	c.paymentUseCaseOnce.Do(func() {
		c.paymentUseCase = paymentUseCase.NewPaymentUseCase(
			c.SignatureVerifier(),
			c.OrderUseCase(),
			c.Forwarder(),
			c.Logger(),
		)
	})
	return c.paymentUseCase
}

// DesignClient returns the design-automation provider client.
func (c *Container) DesignClient() designService.DesignClient {
	c.designClientOnce.Do(func() {
		c.designClient = designService.NewRESTDesignClient(designService.ClientOptions{
			ClientID:     c.config.DesignClientID,
			ClientSecret: c.config.DesignClientSecret,
			RedirectURL:  c.config.DesignRedirectURL,
			AuthURL:      c.config.DesignAuthURL,
			TokenURL:     c.config.DesignTokenURL,
			APIBaseURL:   c.config.DesignAPIBaseURL,
		})
	})
	return c.designClient
}

// DesignUseCase returns the design proxy use case.
func (c *Container) DesignUseCase() designUseCase.DesignUseCase {
	c.designUseCaseOnce.Do(func() {
		c.designUseCase = designUseCase.NewDesignUseCase(c.DesignClient(), c.Logger())
	})
	return c.designUseCase
}

// Server returns the main HTTP server.
func (c *Container) Server() *internalHTTP.Server {
	c.serverOnce.Do(func() {
		logger := c.Logger()
		c.server = internalHTTP.NewServer(c.config, logger, c.MetricsProvider(), internalHTTP.Handlers{
			Certificate: certificateHTTP.NewCertificateHandler(c.CertificateUseCase(), logger),
			Order:       orderHTTP.NewOrderHandler(c.OrderUseCase(), logger),
			Payment:     paymentHTTP.NewPaymentHandler(c.PaymentUseCase(), logger),
			Design:      designHTTP.NewDesignHandler(c.DesignUseCase(), logger),
		})
	})
	return c.server
}

// MetricsServer returns the metrics HTTP server, or nil when metrics are disabled.
func (c *Container) MetricsServer() *internalHTTP.MetricsServer {
	c.metricsServerOnce.Do(func() {
		provider := c.MetricsProvider()
		if provider == nil {
			return
		}
		c.metricsServer = internalHTTP.NewMetricsServer(c.config, c.Logger(), provider)
	})
	return c.metricsServer
}

// Shutdown releases container resources.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.metricsProvider != nil {
		return c.metricsProvider.Shutdown(ctx)
	}
	return nil
}
