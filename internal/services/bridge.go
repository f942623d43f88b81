package services

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/kantanpro/kantanpro/internal/models"
	"github.com/kantanpro/kantanpro/internal/store"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
	"github.com/kantanpro/kantanpro/pkg/scheduler"
)

// ErrBridgeClosed is returned by every call made after Close.
var ErrBridgeClosed = errors.New("bridge closed")

// Bridge is the request/response contract between the UI and the store.
// Calls are queued on a scheduler and run one after another.
type Bridge struct {
	store  *store.Store
	sched  *scheduler.Scheduler
	closed atomic.Bool
	log    *zap.SugaredLogger
}

func NewBridge(st *store.Store, sched *scheduler.Scheduler) *Bridge {
	return &Bridge{
		store: st,
		sched: sched,
		log:   zap.S().Named("bridge"),
	}
}

// Close rejects new calls and waits for the running one. It does not close
// the store.
func (b *Bridge) Close() {
	if b.closed.Swap(true) {
		return
	}
	b.sched.Close()
}

// call runs fn on the scheduler. The statement keeps the scheduler's
// context, so a caller that stops waiting does not abort it.
func call[T any](ctx context.Context, b *Bridge, op string, fn func(ctx context.Context, st *store.Store) (T, error)) (T, error) {
	var zero T
	if b.closed.Load() {
		return zero, ErrBridgeClosed
	}

	v, err := scheduler.Submit(ctx, b.sched, func(workCtx context.Context) (T, error) {
		return fn(workCtx, b.store)
	})
	if errors.Is(err, scheduler.ErrClosed) {
		return zero, ErrBridgeClosed
	}
	if err != nil {
		b.log.Debugw("call failed", "op", op, "error", err)
		return zero, err
	}
	return v, nil
}

// requireChange turns an update or delete that matched no row into a
// ResourceNotFoundError.
func requireChange(resource string, id int64, res models.ExecResult, err error) (models.ExecResult, error) {
	if err != nil {
		return models.ExecResult{}, err
	}
	if res.Changes == 0 {
		return models.ExecResult{}, srvErrors.NewResourceNotFoundError(resource, id)
	}
	return res, nil
}

func pageOptions(limit, offset int) []store.ListOption {
	opts := make([]store.ListOption, 0, 2)
	if limit > 0 {
		opts = append(opts, store.WithLimit(uint64(limit)))
	}
	if offset > 0 {
		opts = append(opts, store.WithOffset(uint64(offset)))
	}
	return opts
}
