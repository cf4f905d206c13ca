// @title KrishiQuest API
// @version 1.0
// @description Farm mini-game backend: field tiles, tasks, weather, voice chat and marketplace.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/krishiquest/KrishiQuest_Go/internal/bootstrap"
	"github.com/krishiquest/KrishiQuest_Go/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(afero.NewOsFs(), os.Stdout, cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg, afero.NewOsFs())
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
		defer cancel()
		app.Shutdown(shutdownCtx)
		return nil
	})

	return g.Wait()
}
