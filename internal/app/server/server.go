package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"responsivas/internal/app/server/api"
	"responsivas/internal/app/server/config"
	"responsivas/internal/app/server/crypto"
	"responsivas/internal/infrastructure/files"
	"responsivas/internal/infrastructure/storage/postgres"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg        *config.Config
	log        *slog.Logger
	storage    *postgres.Storage
	httpServer *http.Server
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	cipher, err := crypto.New(cfg.Auth.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	fileStore, err := files.NewStore(cfg.Server.UploadsDir, log)
	if err != nil {
		return nil, fmt.Errorf("init file store: %w", err)
	}

	storage, err := postgres.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	mux := api.New(storage, cipher, fileStore, cfg, log)

	return &App{
		cfg:     cfg,
		log:     log,
		storage: storage,
		httpServer: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP listening", "addr", a.cfg.Server.RunAddress)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.Error("http shutdown", "error", err)
	}

	return a.storage.Close()
}
