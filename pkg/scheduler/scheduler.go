package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned for work submitted after Close and for queued work
// that never reached a worker.
var ErrClosed = errors.New("scheduler closed")

type queue[T any] []T

func (wq *queue[T]) Len() int { return len(*wq) }

func (wq *queue[T]) Pop() T {
	old := *wq
	x := old[0]
	*wq = old[1:]
	return x
}

func (wq *queue[T]) Push(t T) {
	*wq = append(*wq, t)
}

type workRequest struct {
	fn  Work[any]
	c   chan Result[any]
	ctx context.Context
}

type worker struct {
	done chan any
	wg   *sync.WaitGroup
	log  *zap.SugaredLogger
}

func (w worker) Work(r workRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			w.log.Errorw("work panicked", "panic", rec)
			r.c <- Result[any]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[any]{Data: v, Err: err}
}

type Scheduler struct {
	workers    *queue[worker]
	workQueue  *queue[workRequest]
	closing    chan any
	close      chan any
	done       chan any
	stopped    chan any
	work       chan workRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
	log        *zap.SugaredLogger
}

// NewScheduler starts a scheduler with nbWorkers workers. With one worker,
// work runs strictly one at a time in submission order.
func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		workers:    &queue[worker]{},
		workQueue:  &queue[workRequest]{},
		closing:    make(chan any),
		close:      make(chan any),
		done:       make(chan any, nbWorkers),
		stopped:    make(chan any),
		work:       make(chan workRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
		log:        zap.S().Named("scheduler"),
	}
	for range nbWorkers {
		s.workers.Push(s.newWorker())
	}
	go s.run()
	return s
}

func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	c := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.mainCtx)

	select {
	case <-s.closing:
		c <- Result[any]{Err: ErrClosed}
	case s.work <- workRequest{w, c, ctx}:
	}

	return NewFuture(c, cancel)
}

// Close stops accepting work, fails queued work with ErrClosed and waits
// for in-flight work to return. In-flight work keeps an uncancelled context
// until it returns. It is safe to call more than once.
func (s *Scheduler) Close() {
	s.once.Do(func() {
		close(s.closing)
		s.close <- struct{}{}
		<-s.stopped
		s.mainCancel()
	})
}

func (s *Scheduler) newWorker() worker {
	return worker{done: s.done, wg: &s.wg, log: s.log}
}

func (s *Scheduler) run() {
	defer close(s.stopped)
	for {
		select {
		case w := <-s.work:
			s.workQueue.Push(w)
			s.dispatch()
		case <-s.done:
			s.workers.Push(s.newWorker())
			s.dispatch()
		case <-s.close:
			for s.workQueue.Len() > 0 {
				r := s.workQueue.Pop()
				r.c <- Result[any]{Err: ErrClosed}
			}
			s.wg.Wait()
			return
		}
	}
}

// dispatch drains the workQueue as much as possible
// based on available workers
func (s *Scheduler) dispatch() {
	for s.workers.Len() > 0 && s.workQueue.Len() > 0 {
		r := s.workQueue.Pop()
		worker := s.workers.Pop()
		s.wg.Add(1)
		go worker.Work(r)
	}
}
