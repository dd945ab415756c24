// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout is the maximum time allowed for graceful shutdown.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// APIToken is the static bearer token required on order and design endpoints.
	APIToken string

	// AssetLocations is the ordered list of directories searched for background
	// assets (comma-separated). The first hit wins; all locations are reported
	// when an asset cannot be found.
	AssetLocations []string

	// CertificatePriceCents is the flat price charged per certificate order.
	CertificatePriceCents int64
	// CertificateCurrency is the ISO currency code used for payment intents.
	CertificateCurrency string

	// StripeSecretKey is the API key used to create payment intents.
	StripeSecretKey string
	// StripeWebhookSecret is the signing secret used to verify webhook deliveries.
	StripeWebhookSecret string

	// FulfillmentWebhookURL receives the flat order payload after payment succeeds.
	FulfillmentWebhookURL string

	// DesignClientID is the OAuth client ID for the design-automation provider.
	DesignClientID string
	// DesignClientSecret is the OAuth client secret for the design-automation provider.
	DesignClientSecret string
	// DesignRedirectURL is the OAuth redirect URL registered with the provider.
	DesignRedirectURL string
	// DesignAuthURL is the provider's OAuth authorization endpoint.
	DesignAuthURL string
	// DesignTokenURL is the provider's OAuth token endpoint.
	DesignTokenURL string
	// DesignAPIBaseURL is the base URL for the provider's REST API.
	DesignAPIBaseURL string

	// RateLimitEnabled indicates whether per-IP rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for per-IP rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Auth
		APIToken: env.GetString("API_TOKEN", ""),

		// Renderer assets
		AssetLocations: splitList(env.GetString("ASSET_LOCATIONS", "/app/assets,assets")),

		// Pricing
		CertificatePriceCents: int64(env.GetInt("CERTIFICATE_PRICE_CENTS", 999)),
		CertificateCurrency:   env.GetString("CERTIFICATE_CURRENCY", "usd"),

		// Stripe
		StripeSecretKey:     env.GetString("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: env.GetString("STRIPE_WEBHOOK_SECRET", ""),

		// Fulfillment
		FulfillmentWebhookURL: env.GetString("FULFILLMENT_WEBHOOK_URL", ""),

		// Design-automation provider
		DesignClientID:     env.GetString("DESIGN_CLIENT_ID", ""),
		DesignClientSecret: env.GetString("DESIGN_CLIENT_SECRET", ""),
		DesignRedirectURL:  env.GetString("DESIGN_REDIRECT_URL", ""),
		DesignAuthURL: env.GetString(
			"DESIGN_AUTH_URL",
			"https://www.canva.com/api/oauth/authorize",
		),
		DesignTokenURL: env.GetString(
			"DESIGN_TOKEN_URL",
			"https://api.canva.com/rest/v1/oauth/token",
		),
		DesignAPIBaseURL: env.GetString("DESIGN_API_BASE_URL", "https://api.canva.com/rest/v1"),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "certmaker"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// splitList parses a comma-separated list and trims whitespace.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
