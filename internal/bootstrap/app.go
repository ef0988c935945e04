package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
	"github.com/brainsacos-ui/asistente-linux/internal/infra/config"
	"github.com/brainsacos-ui/asistente-linux/internal/interface/console"
)

// App encapsulates the runnable surfaces of the assistant: the console loop
// and the HTTP server.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	qaSvc  qa.Service
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, qaSvc qa.Service, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), qaSvc: qaSvc, server: server}
}

// RunConsole runs the interactive stdin loop until EOF or cancellation.
func (a *App) RunConsole(ctx context.Context) error {
	loop := console.NewLoop(a.qaSvc, os.Stdin, os.Stdout, a.logger)
	return loop.Run(ctx)
}

// RunServer starts the HTTP server and blocks until shutdown.
func (a *App) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
