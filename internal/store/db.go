package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DefaultBusyTimeout = 5 * time.Second
	DefaultJournalMode = "WAL"
)

type dbOptions struct {
	busyTimeout time.Duration
	journalMode string
}

type DBOption func(*dbOptions)

func WithBusyTimeout(d time.Duration) DBOption {
	return func(o *dbOptions) {
		o.busyTimeout = d
	}
}

func WithJournalMode(mode string) DBOption {
	return func(o *dbOptions) {
		o.journalMode = mode
	}
}

// NewDB opens the sqlite database at path with foreign keys enforced.
// The pool is capped at one connection: the process holds a single handle
// for its lifetime, which also keeps ":memory:" databases alive between calls.
func NewDB(path string, opts ...DBOption) (*sqlx.DB, error) {
	o := dbOptions{
		busyTimeout: DefaultBusyTimeout,
		journalMode: DefaultJournalMode,
	}
	for _, opt := range opts {
		opt(&o)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=%d", path, o.busyTimeout.Milliseconds())
	if path != ":memory:" && o.journalMode != "" {
		dsn += "&_journal_mode=" + o.journalMode
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	return db, nil
}
