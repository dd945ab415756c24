// Package commands defines the CLI commands for the certmaker binary.
package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/allisson/certmaker/internal/app"
	"github.com/allisson/certmaker/internal/config"
)

// ServerCommand returns the command that runs the HTTP servers.
func ServerCommand() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Run the HTTP server",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return runServer(ctx)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	server := container.Server()
	go func() {
		errCh <- server.Start()
	}()

	metricsServer := container.MetricsServer()
	if metricsServer != nil {
		go func() {
			errCh <- metricsServer.Start()
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", slog.Any("error", err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", slog.Any("error", err))
		}
	}

	return container.Shutdown(shutdownCtx)
}
