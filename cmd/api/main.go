package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tsc11539/shortlinks/internal/config"
	httpx "github.com/tsc11539/shortlinks/internal/http"
	"github.com/tsc11539/shortlinks/internal/links"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		slog.Error("Failed to parse config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server Ended")
}

func loadTable(cfg *config.Config) (*links.Table, error) {
	if cfg.LinksFile == "" {
		return links.Default(), nil
	}
	return links.Load(cfg.LinksFile)
}

func newServer(cfg *config.Config, table *links.Table, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           httpx.NewRouter(table, httpx.WithLogger(logger)),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	table, err := loadTable(cfg)
	if err != nil {
		return fmt.Errorf("failed to load link table: %w", err)
	}
	logger.Info("Loaded link table", "links", table.Len(), "source", tableSource(cfg))

	srv := newServer(cfg, table, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("Shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func tableSource(cfg *config.Config) string {
	if cfg.LinksFile == "" {
		return "embedded"
	}
	return cfg.LinksFile
}
