package scheduler_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kantanpro/kantanpro/pkg/scheduler"
)

var _ = Describe("Scheduler", func() {
	var s *scheduler.Scheduler

	AfterEach(func() {
		if s != nil {
			s.Close()
		}
	})

	Describe("AddWork", func() {
		It("should add work and return a future", func() {
			s = scheduler.NewScheduler(1)

			work := func(ctx context.Context) (any, error) {
				return "done", nil
			}

			future := s.AddWork(work)
			Expect(future).NotTo(BeNil())

			var result scheduler.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Data).To(Equal("done"))
		})
	})

	Describe("Run work", func() {
		It("should execute multiple work items", func() {
			s = scheduler.NewScheduler(2)

			results := make(chan int, 3)
			for i := range 3 {
				idx := i
				work := func(ctx context.Context) (any, error) {
					results <- idx
					return idx, nil
				}
				s.AddWork(work)
			}

			Eventually(func() int {
				return len(results)
			}, 2*time.Second, 100*time.Millisecond).Should(Equal(3))
		})
	})

	Describe("Cancel work", func() {
		It("should cancel work via future.Stop()", func() {
			s = scheduler.NewScheduler(1)

			cancelled := make(chan bool, 1)
			work := func(ctx context.Context) (any, error) {
				select {
				case <-ctx.Done():
					cancelled <- true
					return nil, ctx.Err()
				case <-time.After(5 * time.Second):
					return "completed", nil
				}
			}

			future := s.AddWork(work)
			time.Sleep(100 * time.Millisecond)
			future.Stop()

			Eventually(cancelled, 2*time.Second).Should(Receive(BeTrue()))
		})

		// Given work that is running when the scheduler is closed
		// When Close waits for it
		// Then its context stays live and it returns its own result
		It("should not cancel in-flight work on Close", func() {
			s = scheduler.NewScheduler(1)

			started := make(chan struct{})
			unblock := make(chan struct{})
			future := s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-unblock:
					return "completed", ctx.Err()
				}
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			sched := s
			s = nil // prevent AfterEach from closing again
			closeDone := make(chan struct{})
			go func() {
				sched.Close()
				close(closeDone)
			}()

			Consistently(future.C(), 200*time.Millisecond).ShouldNot(Receive())
			close(unblock)

			var result scheduler.Result[any]
			Eventually(future.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Data).To(Equal("completed"))
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()
			s = scheduler.NewScheduler(4)

			work := func(ctx context.Context) (any, error) {
				time.Sleep(time.Millisecond)
				return nil, nil
			}

			for i := 0; i < 200; i++ {
				s.AddWork(work)
			}

			time.Sleep(100 * time.Millisecond)
			s.Close()
			s = nil // prevent AfterEach from closing again

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base+10))
		})
	})

	Describe("Close behavior", func() {
		It("should return ErrClosed when AddWork is called after Close", func() {
			s = scheduler.NewScheduler(1)
			s.Close()

			future := s.AddWork(func(ctx context.Context) (any, error) {
				return "done", nil
			})

			var result scheduler.Result[any]
			Eventually(future.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(scheduler.ErrClosed))
		})

		It("should wait for in-flight work to finish on Close", func() {
			s = scheduler.NewScheduler(1)

			started := make(chan struct{})
			unblock := make(chan struct{})
			work := func(ctx context.Context) (any, error) {
				close(started)
				<-unblock
				return "done", nil
			}

			s.AddWork(work)
			Eventually(started, 1*time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				s.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
			s = nil // prevent AfterEach from closing again
		})

		// Given one busy worker and a second request waiting in the queue
		// When the scheduler is closed
		// Then the queued request fails with ErrClosed without ever running
		It("should fail queued work on Close", func() {
			s = scheduler.NewScheduler(1)

			started := make(chan struct{})
			release := make(chan struct{})
			first := s.AddWork(func(ctx context.Context) (any, error) {
				close(started)
				<-release
				return "first", nil
			})
			Eventually(started, 1*time.Second).Should(BeClosed())

			ran := make(chan struct{}, 1)
			second := s.AddWork(func(ctx context.Context) (any, error) {
				ran <- struct{}{}
				return "late", nil
			})

			sched := s
			s = nil // prevent AfterEach from closing again
			closeDone := make(chan struct{})
			go func() {
				sched.Close()
				close(closeDone)
			}()

			var result scheduler.Result[any]
			Eventually(second.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(scheduler.ErrClosed))

			close(release)
			Eventually(first.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Data).To(Equal("first"))
			Eventually(closeDone, 1*time.Second).Should(BeClosed())
			Consistently(ran, 100*time.Millisecond).ShouldNot(Receive())
		})
	})

	Describe("Panic recovery", func() {
		It("should report a panic as an error and keep serving", func() {
			s = scheduler.NewScheduler(1)

			future := s.AddWork(func(ctx context.Context) (any, error) {
				panic("boom")
			})

			var result scheduler.Result[any]
			Eventually(future.C(), 1*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(ContainSubstring("boom")))

			v, err := scheduler.Submit(context.Background(), s, func(ctx context.Context) (string, error) {
				return "still alive", nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("still alive"))
		})
	})

	Describe("Submit", func() {
		It("should return the typed result", func() {
			s = scheduler.NewScheduler(1)

			v, err := scheduler.Submit(context.Background(), s, func(ctx context.Context) (int, error) {
				return 42, nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(42))
		})

		It("should return the work error", func() {
			s = scheduler.NewScheduler(1)
			boom := errors.New("boom")

			_, err := scheduler.Submit(context.Background(), s, func(ctx context.Context) (int, error) {
				return 0, boom
			})

			Expect(err).To(MatchError(boom))
		})

		It("should return the zero value for a nil pointer result", func() {
			s = scheduler.NewScheduler(1)

			v, err := scheduler.Submit(context.Background(), s, func(ctx context.Context) (*string, error) {
				return nil, nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNil())
		})

		// Given work that is still running
		// When the caller stops waiting
		// Then Submit returns the caller's error and the work runs to completion
		It("should stop waiting without cancelling the work", func() {
			s = scheduler.NewScheduler(1)

			finished := make(chan struct{})
			unblock := make(chan struct{})
			ctx, cancel := context.WithCancel(context.Background())

			errCh := make(chan error, 1)
			go func() {
				_, err := scheduler.Submit(ctx, s, func(workCtx context.Context) (string, error) {
					<-unblock
					close(finished)
					return "done", workCtx.Err()
				})
				errCh <- err
			}()

			cancel()
			Eventually(errCh, 1*time.Second).Should(Receive(MatchError(context.Canceled)))

			close(unblock)
			Eventually(finished, 1*time.Second).Should(BeClosed())
		})

		It("should serialize work on a single worker", func() {
			s = scheduler.NewScheduler(1)

			var mu sync.Mutex
			active, maxActive := 0, 0
			var wg sync.WaitGroup
			for range 10 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _ = scheduler.Submit(context.Background(), s, func(ctx context.Context) (any, error) {
						mu.Lock()
						active++
						if active > maxActive {
							maxActive = active
						}
						mu.Unlock()
						time.Sleep(5 * time.Millisecond)
						mu.Lock()
						active--
						mu.Unlock()
						return nil, nil
					})
				}()
			}
			wg.Wait()

			Expect(maxActive).To(Equal(1))
		})
	})
})
