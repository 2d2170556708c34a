package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/app"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand(_ *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	log := logger.NewFromStrings(cfg.Log.Level, cfg.Log.Format, cfg.App.Name)

	store, cleanup, err := app.BuildStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("build store: %w", err)
	}
	defer cleanup()

	handler, err := router.NewRouter(router.Options{
		Store:      store,
		Sessions:   memory.NewSessionRepo(),
		SessionTTL: cfg.Server.SessionTTL,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		// los streams SSE terminan cuando llega la señal
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":   cfg.Server.Addr,
			"driver": cfg.Storage.Driver,
			"pets":   store.Len(),
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
