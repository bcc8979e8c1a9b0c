package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"mines_backend/internal/config"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run обслуживает HTTP до отмены ctx, затем корректно останавливает сервер
func (s *App) Run(ctx context.Context) error {
	err := config.Load(".env")
	if err != nil {
		slog.Info("no .env file loaded, using process environment", "error", err)
	}
	s.initServiceProvider()
	defer func() {
		if err := s.ServiceProvider.Close(); err != nil {
			slog.Error("close storage", "error", err)
		}
	}()

	httpCfg := s.ServiceProvider.HTTPCfg()
	srv := &http.Server{
		Addr:              httpCfg.Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", srv.Addr, "storage", s.ServiceProvider.StorageCfg().Driver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout())
		defer cancel()

		slog.Info("shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
