// Command migrate applies all pending database migrations embedded in the
// binary and exits.
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
	"github.com/heartmarshall/docsign-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations up to date")
}
