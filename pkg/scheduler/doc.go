// Package scheduler runs submitted work on a fixed pool of workers and hands
// back futures.
//
// KantanPro creates it with a single worker: every database call made by
// the Bridge goes through it, so statements run one at a time in
// submission order.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────┐
//	│                        Scheduler                         │
//	│                                                          │
//	│   AddWork(fn) ──► work chan ──► run() loop               │
//	│                                   │                      │
//	│                       ┌───────────┴───────────┐          │
//	│                       │ workQueue  │ workers  │          │
//	│                       └───────────┬───────────┘          │
//	│                                   │ dispatch()           │
//	│                                   ▼                      │
//	│                       worker.Work(request)               │
//	│                                   │                      │
//	│                   Result{Data, Err} ──► future.C()       │
//	└──────────────────────────────────────────────────────────┘
//
// The run loop reacts to three events:
//
//	for {
//	    select {
//	    case w := <-s.work:   // queue and dispatch
//	    case <-s.done:        // a worker finished, return it to the pool
//	    case <-s.close:       // fail the queue with ErrClosed, wait, exit
//	    }
//	}
//
// # Futures
//
// AddWork returns immediately. The future's channel receives exactly one
// Result. Future.Stop cancels the context passed to the work function; the
// work decides whether to honour it.
//
//	future := sched.AddWork(func(ctx context.Context) (any, error) {
//	    return st.Clients().List(ctx)
//	})
//	result := <-future.C()
//
// Submit is the typed, blocking form used by the Bridge:
//
//	clients, err := scheduler.Submit(ctx, sched, func(ctx context.Context) ([]models.Client, error) {
//	    return st.Clients().List(ctx)
//	})
//
// When the caller's ctx ends first, Submit returns ctx.Err() and leaves the
// work running: a statement already handed to the database is never
// abandoned halfway.
//
// # Panics
//
// A panicking work function is logged and reported to its future as an
// error. The worker returns to the pool.
//
// # Shutdown
//
// Close fails work still in the queue with ErrClosed and waits for in-flight
// work to return. Running work is never cancelled by Close: a statement that
// reached the database runs to completion or failure. The scheduler context
// is cancelled once the last worker is done. AddWork after Close yields
// ErrClosed immediately. Close is idempotent.
package scheduler
