package scheduler

import (
	"context"
	"fmt"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	f := &Future[T]{
		input:  input,
		cancel: cancel,
	}

	return f
}

func (f *Future[T]) C() chan T {
	return f.input
}

func (f *Future[T]) Stop() {
	f.cancel()
}

// Submit runs work on the scheduler and waits for its typed result.
// When ctx ends first Submit returns ctx.Err(); the work itself keeps
// running to completion.
func Submit[T any](ctx context.Context, s *Scheduler, work Work[T]) (T, error) {
	var zero T

	future := s.AddWork(func(ctx context.Context) (any, error) {
		return work(ctx)
	})

	select {
	case r := <-future.C():
		if r.Err != nil {
			return zero, r.Err
		}
		if r.Data == nil {
			return zero, nil
		}
		v, ok := r.Data.(T)
		if !ok {
			return zero, fmt.Errorf("unexpected result type %T", r.Data)
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
