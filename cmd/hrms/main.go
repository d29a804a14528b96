package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/console"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hrms:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout carries the rendered screens.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))

	api, err := client.New(cfg.APIBaseURL, client.WithTimeout(cfg.Timeout), client.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("console starting", "api", cfg.APIBaseURL)
	err = console.New(api, os.Stdin, os.Stdout, logger).Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
