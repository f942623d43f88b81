package migrations

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationsDir = "sql"

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// Run brings the schema up to the latest version. It is safe to call on
// every startup and on a database created before versioning was introduced:
// the baseline only creates what is missing.
func Run(ctx context.Context, db *sqlx.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: zap.S().Named("migrations")})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return srvErrors.NewSchemaInitError(fmt.Errorf("failed to set goose dialect: %w", err))
	}

	if err := goose.UpContext(ctx, db.DB, migrationsDir); err != nil {
		return srvErrors.NewSchemaInitError(err)
	}

	return nil
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sqlx.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db.DB)
}

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debugf(strings.TrimSpace(format), v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatalf(strings.TrimSpace(format), v...)
}
