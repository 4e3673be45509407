// Command migrate applies the embedded schema migrations, including the
// seeded activity catalogs, to the configured database.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres"
	"github.com/LawUtilities/ADMS.API-sub014/internal/app"
	"github.com/LawUtilities/ADMS.API-sub014/internal/config"
	"github.com/LawUtilities/ADMS.API-sub014/pkg/ctxutil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = ctxutil.EnsureCorrelationID(ctx)

	applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		logger.ErrorContext(ctx, "migrate failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}

	logger.InfoContext(ctx, "migrations applied",
		slog.Int("count", len(applied)),
		slog.Any("versions", applied),
	)
}
