package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/elelcahyani/uangku/internal/config"
	"github.com/elelcahyani/uangku/internal/database"
	"github.com/elelcahyani/uangku/internal/export"
	uangkuHttp "github.com/elelcahyani/uangku/internal/http"
	budgetHandler "github.com/elelcahyani/uangku/internal/http/budget"
	categoryHandler "github.com/elelcahyani/uangku/internal/http/category"
	exportHandler "github.com/elelcahyani/uangku/internal/http/export"
	importHandler "github.com/elelcahyani/uangku/internal/http/importcsv"
	reportHandler "github.com/elelcahyani/uangku/internal/http/report"
	txHandler "github.com/elelcahyani/uangku/internal/http/transaction"
	"github.com/elelcahyani/uangku/internal/importer"
	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	collectionStore, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	ledgerService := ledger.NewService(collectionStore)
	if err := ledgerService.Init(ctx); err != nil {
		slog.Error("failed to load collections", "error", err)
		os.Exit(1)
	}

	router := uangkuHttp.New(
		txHandler.NewHandler(ledgerService),
		categoryHandler.NewHandler(ledgerService),
		budgetHandler.NewHandler(ledgerService),
		reportHandler.NewHandler(ledgerService),
		importHandler.NewHandler(importer.NewParser(), ledgerService),
		exportHandler.NewHandler(export.NewService(), ledgerService),
		cfg.Auth.Secret,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "store", cfg.Store.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newStore(ctx context.Context, cfg *config.Config) (ledger.Store, error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		db, err := database.New(ctx, cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return store.NewPostgresStore(ctx, db)
	case config.StoreFile:
		return store.NewFileStore(cfg.Store.Dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
