package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/connectmate/connectmate_api/config"
	deps "github.com/connectmate/connectmate_api/internal/debs"
	api "github.com/connectmate/connectmate_api/internal/http/rest"
	"github.com/connectmate/connectmate_api/util/logger"
	gfshutdown "github.com/gelmium/graceful-shutdown"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	deps := deps.New(ctx, cfg)
	deps.Start(ctx)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
	}
	go func() {
		slog.Info("server running", "port", cfg.Port)
		if err := a.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			slog.Info("request to shutdown server, draining", "wait", allowConnectionsAfterShutdown)
			time.Sleep(allowConnectionsAfterShutdown)
			return a.Shutdown(ctx)
		},
	})

	exitCode := <-wait
	deps.Close()
	slog.Info("shutdown complete", "exit_code", exitCode)
	os.Exit(exitCode)
}
