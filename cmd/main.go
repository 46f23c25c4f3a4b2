package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wapj/mcp-test/internal/app"
	"github.com/wapj/mcp-test/pkg/config"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	// Loads .env too, so the bootstrap logger sees the same environment as the app.
	cfg, err := config.New()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(logger.Opts{Env: cfg.App.Env, Development: cfg.IsDevelopment()})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Stop on a signal or when the transport ends on its own.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	code := 0
	select {
	case <-sigChan:
	case sig := <-application.Wait():
		code = sig.ExitCode
	}

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
	os.Exit(code)
}
