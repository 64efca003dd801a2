// Package cmd carries shared entrypoint behavior for courseware commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hxlabs/courseware/internal/platform/otel"
)

const defaultShutdownTimeout = 5 * time.Second

// RunOptions controls shared entrypoint behavior.
type RunOptions struct {
	// OTelEndpoint enables trace export when non-empty.
	OTelEndpoint string
	// ShutdownTimeout caps the time spent flushing telemetry on exit.
	ShutdownTimeout time.Duration
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// RunWithTelemetry configures observability and executes a run loop.
// Telemetry setup failures abort startup; shutdown failures are logged
// and otherwise ignored so they never mask the run error.
func RunWithTelemetry(ctx context.Context, service string, logger *zap.Logger, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}

	shutdown, err := otel.Setup(ctx, service, options.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	defer func() {
		timeout := options.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil && logger != nil {
			logger.Warn("telemetry shutdown", zap.String("service", service), zap.Error(err))
		}
	}()

	return run(ctx)
}
