package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/allisson/certmaker/internal/config"
	"github.com/allisson/certmaker/internal/metrics"
)

// MetricsServer serves the Prometheus scrape endpoint on its own port,
// so metrics never share the public listener.
type MetricsServer struct {
	logger     *slog.Logger
	httpServer *http.Server
}

// NewMetricsServer creates the metrics HTTP server.
func NewMetricsServer(cfg *config.Config, logger *slog.Logger, provider *metrics.Provider) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", provider.Handler())

	return &MetricsServer{
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start begins serving the metrics endpoint. It blocks until the server stops.
func (s *MetricsServer) Start() error {
	s.logger.Info("starting metrics server", slog.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.httpServer.Shutdown(ctx)
}
