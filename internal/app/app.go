package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/config"
	"github.com/heartmarshall/docsign-backend/internal/metrics"
	"github.com/heartmarshall/docsign-backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("notifications_stubbed", cfg.Notify.StubNotifications()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	m := metrics.New()
	container := NewContainer(cfg, logger, pool, m)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := container.Handler(cfg, logger, limiter, m, m.Handler())

	if err := serve(ctx, cfg.Server, handler, logger); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
