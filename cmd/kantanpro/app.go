package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kantanpro/kantanpro/internal/config"
	"github.com/kantanpro/kantanpro/internal/services"
	"github.com/kantanpro/kantanpro/internal/store"
	"github.com/kantanpro/kantanpro/internal/store/migrations"
	"github.com/kantanpro/kantanpro/pkg/scheduler"
)

// openStore opens the database file, creating its directory, and brings the
// schema up to date. A schema failure is fatal for every command.
func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store.NewStore(db), nil
}

func openDB(ctx context.Context, cfg *config.Configuration) (*sqlx.DB, error) {
	path, err := cfg.Store.Path()
	if err != nil {
		return nil, err
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := store.NewDB(path,
		store.WithBusyTimeout(cfg.Store.BusyTimeout),
		store.WithJournalMode(cfg.Store.JournalMode),
	)
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	zap.S().Named("cmd").Infow("database ready", "path", path)
	return db, nil
}

// app is the store and the bridge in front of it.
type app struct {
	store  *store.Store
	bridge *services.Bridge
}

func newApp(ctx context.Context, cfg *config.Configuration) (*app, error) {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		store:  st,
		bridge: services.NewBridge(st, scheduler.NewScheduler(cfg.Bridge.Workers)),
	}, nil
}

// Close stops the bridge, then releases the database handle.
func (a *app) Close() {
	a.bridge.Close()
	if err := a.store.Close(); err != nil {
		zap.S().Named("cmd").Errorw("failed to close database", "error", err)
	}
}
