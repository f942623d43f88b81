package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

// QueryInterceptor is the single path from the repositories to the database.
// It runs parameterized statements, logs them and turns every engine failure
// into a StorageError.
type QueryInterceptor struct {
	db  sqlx.ExtContext
	log *zap.SugaredLogger
}

func NewQueryInterceptor(db sqlx.ExtContext) QueryInterceptor {
	return QueryInterceptor{db: db, log: zap.S().Named("store")}
}

// Exec runs an INSERT, UPDATE or DELETE.
func (q QueryInterceptor) Exec(ctx context.Context, query string, args ...any) (models.ExecResult, error) {
	start := time.Now()
	res, err := q.db.ExecContext(ctx, query, args...)
	q.trace("exec", query, args, start, err)
	if err != nil {
		return models.ExecResult{}, srvErrors.NewStorageError(query, err)
	}

	var result models.ExecResult
	if result.ID, err = res.LastInsertId(); err != nil {
		return models.ExecResult{}, srvErrors.NewStorageError(query, err)
	}
	if result.Changes, err = res.RowsAffected(); err != nil {
		return models.ExecResult{}, srvErrors.NewStorageError(query, err)
	}
	return result, nil
}

// Get scans a single row into dest. A missing row is reported as found == false.
func (q QueryInterceptor) Get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	start := time.Now()
	err := sqlx.GetContext(ctx, q.db, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		q.trace("get", query, args, start, nil)
		return false, nil
	}
	q.trace("get", query, args, start, err)
	if err != nil {
		return false, srvErrors.NewStorageError(query, err)
	}
	return true, nil
}

// Select scans every row into the slice pointed to by dest.
func (q QueryInterceptor) Select(ctx context.Context, dest any, query string, args ...any) error {
	start := time.Now()
	err := sqlx.SelectContext(ctx, q.db, dest, query, args...)
	q.trace("select", query, args, start, err)
	if err != nil {
		return srvErrors.NewStorageError(query, err)
	}
	return nil
}

func (q QueryInterceptor) ExecBuilder(ctx context.Context, b sq.Sqlizer) (models.ExecResult, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return models.ExecResult{}, err
	}
	return q.Exec(ctx, query, args...)
}

func (q QueryInterceptor) GetBuilder(ctx context.Context, dest any, b sq.Sqlizer) (bool, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return false, err
	}
	return q.Get(ctx, dest, query, args...)
}

func (q QueryInterceptor) SelectBuilder(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return q.Select(ctx, dest, query, args...)
}

// WithTx runs fn inside one transaction. When q is already bound to a
// transaction fn joins it.
func (q QueryInterceptor) WithTx(ctx context.Context, fn func(tx QueryInterceptor) error) error {
	db, ok := q.db.(*sqlx.DB)
	if !ok {
		return fn(q)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return srvErrors.NewStorageError("BEGIN", err)
	}

	if err := fn(QueryInterceptor{db: tx, log: q.log}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			q.log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return srvErrors.NewStorageError("COMMIT", err)
	}
	return nil
}

func (q QueryInterceptor) trace(op, query string, args []any, start time.Time, err error) {
	if err != nil {
		q.log.Debugw(op+" failed", "query", query, "args", args, "duration", time.Since(start), "error", err)
		return
	}
	q.log.Debugw(op, "query", query, "args", args, "duration", time.Since(start))
}
