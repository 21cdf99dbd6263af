package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jay10z/it-equipment-ordering-system/internal/app"
	"github.com/jay10z/it-equipment-ordering-system/internal/config"
	apperrors "github.com/jay10z/it-equipment-ordering-system/pkg/errors"
	"github.com/jay10z/it-equipment-ordering-system/pkg/logger"
	"github.com/jay10z/it-equipment-ordering-system/pkg/tracing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger. Diagnostics go to stderr so command
	// output on stdout stays clean.
	log := logger.NewWithWriter("storefront", cfg.LogLevel, os.Stderr)
	log.Debug("starting storefront",
		slog.String("environment", cfg.Environment),
		slog.String("api_base_url", cfg.APIBaseURL),
		slog.String("store_backend", cfg.StoreBackend),
	)

	// Initialize tracing. Disabled by default; a no-op shutdown is returned
	// in that case.
	shutdown, err := tracing.Init(context.Background(), tracing.Config{
		ServiceName:  "storefront",
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SampleRate:   cfg.OTELSampleRate,
		Enabled:      cfg.TracingEnabled,
	})
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	// Create the application with all dependencies wired.
	application, err := app.NewApp(cfg, log, os.Stdout)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer func() { _ = application.Close() }()

	// Create a context that is canceled on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return application.Run(ctx, os.Args[1:])
}
