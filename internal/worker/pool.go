// Package worker runs independent jobs on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
)

// Job is one unit of work. Index is the caller's position for the job and is
// copied to its Result, since results arrive in completion order.
type Job[T any] struct {
	Index int
	Value T
}

// Result is the outcome of one Job.
type Result[R any] struct {
	Index int
	Value R
}

type settings struct {
	workers int
	buffer  int
}

// Option configures a Pool.
type Option func(*settings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		if size >= 1 {
			s.buffer = size
		}
	}
}

// Pool applies fn to submitted jobs on a fixed number of goroutines.
type Pool[T, R any] struct {
	settings
	fn      func(T) R
	jobs    chan Job[T]
	results chan Result[R]
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPool creates a pool running fn. Without options it has 1 worker and a
// buffer of 64.
func NewPool[T, R any](fn func(T) R, opts ...Option) *Pool[T, R] {
	p := &Pool[T, R]{
		settings: settings{workers: 1, buffer: 64},
		fn:       fn,
	}
	for _, opt := range opts {
		opt(&p.settings)
	}
	p.jobs = make(chan Job[T], p.buffer)
	p.results = make(chan Result[R], p.buffer)
	return p
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool[T, R]) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.Stopped() {
			continue
		}
		p.results <- Result[R]{Index: job.Index, Value: p.fn(job.Value)}
	}
}

// Submit queues a job, blocking while the buffer is full.
func (p *Pool[T, R]) Submit(index int, value T) {
	p.jobs <- Job[T]{Index: index, Value: value}
}

// Stop makes workers drop jobs they have not started.
func (p *Pool[T, R]) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool[T, R]) Stopped() bool {
	return p.stopped.Load()
}

// Close stops accepting jobs and waits for the workers. Results is closed
// once the last worker returns, so Close must run concurrently with a reader
// when more jobs than the buffer size were submitted.
func (p *Pool[T, R]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished jobs.
func (p *Pool[T, R]) Results() <-chan Result[R] {
	return p.results
}

// Map applies fn to every item on a pool and returns the results in item
// order. If ctx is cancelled first, unstarted items are dropped and the
// context error is returned.
func Map[T, R any](ctx context.Context, items []T, fn func(T) R, opts ...Option) ([]R, error) {
	opts = append([]Option{WithBufferSize(len(items) + 1)}, opts...)
	p := NewPool(fn, opts...)
	p.Start()

	stop := context.AfterFunc(ctx, p.Stop)
	defer stop()

	go func() {
		defer p.Close()
		for i, item := range items {
			if p.Stopped() {
				return
			}
			p.Submit(i, item)
		}
	}()

	out := make([]R, len(items))
	for r := range p.Results() {
		out[r.Index] = r.Value
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
