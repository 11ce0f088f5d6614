package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/personsvc/internal/config"
	"github.com/dmitrymomot/personsvc/internal/store"
	"github.com/dmitrymomot/personsvc/internal/view"
	"github.com/dmitrymomot/personsvc/middlewares"
	"github.com/dmitrymomot/personsvc/pkg/db"
	"github.com/dmitrymomot/personsvc/pkg/logger"
)

func newLogger(cfg config.Config) *slog.Logger {
	return logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor())
}

// openStore connects to the configured backend. The schema is not touched.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Store, error) {
	table := cfg.Database.MigrationsTable()
	storeLog := log.With(slog.String("component", "store"))

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		return store.NewPostgres(pool, table, storeLog), nil
	case config.DriverSQLite:
		return store.OpenSQLite(ctx, cfg.Database.SQLitePath, table, storeLog)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Database.Driver)
	}
}

// templateRenderer is a view.Renderer with an optional startup warm-up.
type templateRenderer interface {
	view.Renderer
	Warm(ctx context.Context) error
}

type reloadingRenderer struct{ *view.Reloading }

// Warm is a no-op: the directory is read on every render.
func (reloadingRenderer) Warm(context.Context) error { return nil }

func newRenderer(cfg config.TemplatesConfig) templateRenderer {
	fsys := os.DirFS(cfg.Dir)
	if cfg.Preload {
		return view.NewCached(fsys, cfg.Ext)
	}
	return reloadingRenderer{view.NewReloading(fsys, cfg.Ext)}
}
