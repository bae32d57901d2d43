// Command server runs the storefront HTTP API. APP_PROFILE picks the config
// profile and APP_CONFIG_FILE optionally names an extra yaml layer.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/domain-storefront/internal/adapters/http"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile, e.g. local or prod")
	}

	cfg, err := config.Load(profile, config.WithOverrideFile(os.Getenv("APP_CONFIG_FILE")))
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log, os.Stderr, slog.String("service", cfg.Telemetry.ServiceName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer flush(otel, logger)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	provide(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	registerHealthChecks(injector, cfg)
	defer closeStorage(injector, cfg, logger)

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("storefront ready",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
		slog.String("provider", cfg.Storefront.Provider),
		slog.String("storage", cfg.Storage.Driver),
	)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining requests", slog.Any("error", err))
	}
	<-served
	return nil
}

// flush pushes out buffered spans and metric points before exit.
func flush(p *telemetry.Provider, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
	logger.Info("shutdown complete")
}
