// Command cleanup-tokens flags signer access tokens past their expiry as
// expired and moves signers that never signed to expired. It is intended
// to be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/docsign-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docsign-backend/internal/app"
	"github.com/heartmarshall/docsign-backend/internal/config"
	"github.com/heartmarshall/docsign-backend/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	container := app.NewContainer(cfg, logger, pool, metrics.Nop{})

	n, err := container.Guard.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed", slog.Int("expired", n))
}
