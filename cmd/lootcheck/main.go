// Command lootcheck loads every configured loot table from PostgreSQL,
// registers the rows the way the world server does and reports data
// problems. Malformed rows are warnings; only infrastructure failures
// (config, database, content pack) exit with status 1.
//
// Usage:
//
//	LOOTCORE_CONFIG=config/lootcore.yaml go run ./cmd/lootcheck
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/udisondev/lootcore/internal/condition"
	"github.com/udisondev/lootcore/internal/config"
	"github.com/udisondev/lootcore/internal/data"
	"github.com/udisondev/lootcore/internal/db"
	"github.com/udisondev/lootcore/internal/loot"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadLootServer(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))

	// счётчики loot создаются в NewTables, провайдер нужен до этого
	if !cfg.Metrics.Enabled {
		otel.SetMeterProvider(noop.NewMeterProvider())
	}

	stores := cfg.Stores
	if len(stores) == 0 {
		stores = loot.StoreNames
	}
	for _, name := range stores {
		if !slices.Contains(loot.StoreNames, name) {
			return fmt.Errorf("config: unknown loot table %q", name)
		}
	}

	slog.Info("lootcheck starting", "log_level", cfg.LogLevel, "stores", len(stores))

	content, err := data.LoadContent(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("loading content pack: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	version, err := db.RunMigrations(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied", "version", version)

	start := time.Now()
	repo := db.NewLootTemplateRepository(database.Pool())
	rowsByStore, err := db.LoadLootRows(ctx, repo, stores)
	if err != nil {
		return fmt.Errorf("loading loot tables: %w", err)
	}
	slog.Info("loot tables fetched", "duration", time.Since(start))

	tables := loot.NewTables(
		condition.NewRegistry(content, cfg.MaxSkillValue),
		content,
		loot.Rates{DropItems: cfg.Rates.DropItems, DropMoney: cfg.Rates.DropMoney},
		nil,
	)
	stats := tables.LoadAll(rowsByStore)

	var total loot.LoadStats
	problems := 0
	for _, name := range stores {
		s := stats[name]
		total.Definitions += s.Definitions
		total.Skipped += s.Skipped
		total.Templates += s.Templates
		problems += len(tables.Store(name).Verify())
	}

	slog.Info("loot check finished",
		"definitions", total.Definitions,
		"templates", total.Templates,
		"skipped", total.Skipped,
		"template_problems", problems,
		"conditions", tables.Conditions.Len(),
		"duration", time.Since(start))
	return nil
}
