// Package app wires configuration, the database pool, repositories and
// services into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/catalog"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/document"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/ledger"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/matter"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/revision"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/transfer"
	"github.com/LawUtilities/ADMS.API-sub014/internal/adapter/postgres/user"
	"github.com/LawUtilities/ADMS.API-sub014/internal/config"
	"github.com/LawUtilities/ADMS.API-sub014/internal/service/history"
	"github.com/LawUtilities/ADMS.API-sub014/internal/service/records"
	"github.com/LawUtilities/ADMS.API-sub014/internal/service/report"
)

// App holds the wired services and the pool they share.
type App struct {
	Log     *slog.Logger
	Records *records.Service
	History *history.Service
	Reports *report.Service

	pool *pgxpool.Pool
}

// New connects to the database and builds every service. The activity
// catalogs are loaded eagerly so a database without seeded catalogs fails
// at startup rather than on the first audited operation.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a, err := Wire(ctx, pool, cfg, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	a.pool = pool

	logger.InfoContext(ctx, "application started",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)
	return a, nil
}

// Wire builds the services on an existing pool. The caller keeps
// ownership of the pool.
func Wire(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (*App, error) {
	catalogRepo := catalog.New(pool)
	if _, err := catalogRepo.Load(ctx); err != nil {
		return nil, fmt.Errorf("load activity catalogs: %w", err)
	}

	matterRepo := matter.New(pool)
	documentRepo := document.New(pool)
	revisionRepo := revision.New(pool)
	userRepo := user.New(pool)
	ledgerRepo := ledger.New(pool)
	transferRepo := transfer.New(pool)
	txm := postgres.NewTxManager(pool)

	recordsService := records.NewService(logger,
		records.Config{
			TxMaxRetries: cfg.Ledger.TxMaxRetries,
			TxRetryBase:  cfg.Ledger.TxRetryBase,
		},
		records.Repos{
			Matters:    matterRepo,
			Documents:  documentRepo,
			Revisions:  revisionRepo,
			Users:      userRepo,
			Ledger:     ledgerRepo,
			Transfers:  transferRepo,
			Activities: catalogRepo,
		},
		txm,
	)

	historyService := history.NewService(logger,
		ledgerRepo, transferRepo, matterRepo, documentRepo, revisionRepo, txm,
	)

	reportService := report.NewService(logger,
		report.Config{
			Workers:     cfg.Report.Workers,
			LoaderWait:  cfg.Report.LoaderWait,
			LoaderBatch: cfg.Report.LoaderBatch,
		},
		matterRepo, documentRepo, userRepo, ledgerRepo, transferRepo,
	)

	return &App{
		Log:     logger,
		Records: recordsService,
		History: historyService,
		Reports: reportService,
	}, nil
}

// Close releases the pool when New created it.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
