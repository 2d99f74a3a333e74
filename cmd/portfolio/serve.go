package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfolio.dev/internal/handlers"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and its API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	store, err := services.NewContentStore(ctx, cfg.Content.DataPath, models.Theme(cfg.Site.Theme), logger.Named("content"))
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	router := handlers.SetupRoutes(cfg, handlers.NewServices(cfg, store, logger), logger.Named("http"))
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Content.Watch {
		watcher, err := services.NewContentWatcher(cfg.Content.DataPath, store, cfg.Content.Debounce, logger.Named("watcher"))
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			watcher.Stop()
			return err
		}
		defer watcher.Stop()
	}

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
