// Package workpool runs a fixed set of workers draining a shared deque.
package workpool

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/juju/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrorezn/gocommon/concurrent"
)

const defaultPollInterval = 50 * time.Millisecond

type Option[T any] func(*Pool[T])

func WithWorkers[T any](n int) Option[T] {
	return func(p *Pool[T]) {
		p.workers = n
	}
}

func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(p *Pool[T]) {
		p.logger = logger
	}
}

// WithQueue makes the pool drain an existing deque instead of its own.
// Items pushed onto it directly, rather than through Submit, are noticed by
// idle workers on their next poll.
func WithQueue[T any](queue *concurrent.ConcurrentDeque[T]) Option[T] {
	return func(p *Pool[T]) {
		p.queue = queue
	}
}

// WithPollInterval sets how often idle workers recheck the queue for items
// that arrived without Submit.
func WithPollInterval[T any](d time.Duration) Option[T] {
	return func(p *Pool[T]) {
		p.poll = d
	}
}

type Pool[T any] struct {
	queue   *concurrent.ConcurrentDeque[T]
	handler func(ctx context.Context, item T) error
	workers int
	logger  *slog.Logger
	poll    time.Duration
	wake    chan struct{}

	processed atomic.Int64
	failed    atomic.Int64
}

// New returns a pool calling handler for every submitted item. A handler
// error is logged and counted; it does not stop the pool.
func New[T any](handler func(ctx context.Context, item T) error, opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		handler: handler,
		workers: 1,
		poll:    defaultPollInterval,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.queue == nil {
		p.queue = concurrent.NewConcurrentDeque[T]()
	}
	if p.poll <= 0 {
		p.poll = defaultPollInterval
	}
	if p.workers < 1 {
		p.workers = 1
	}
	p.wake = make(chan struct{}, p.workers)

	return p
}

// Submit queues item behind everything already pending.
func (p *Pool[T]) Submit(item T) {
	p.queue.PushBack(item)
	p.notify()
}

// SubmitFront queues item ahead of everything already pending.
func (p *Pool[T]) SubmitFront(item T) {
	p.queue.PushFront(item)
	p.notify()
}

func (p *Pool[T]) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Pending is a snapshot of the number of queued items.
func (p *Pool[T]) Pending() int {
	return p.queue.WasSize()
}

func (p *Pool[T]) Processed() int64 {
	return p.processed.Load()
}

func (p *Pool[T]) Failed() int64 {
	return p.failed.Load()
}

// Run blocks running the workers until ctx is cancelled. Items still queued
// at that point stay in the deque.
func (p *Pool[T]) Run(ctx context.Context) error {
	gr, ctx := errgroup.WithContext(ctx)
	for id := 0; id < p.workers; id++ {
		gr.Go(func() error {
			p.work(ctx, id)

			return nil
		})
	}

	return errors.Trace(gr.Wait())
}

func (p *Pool[T]) work(ctx context.Context, id int) {
	logger := p.logger.With("worker", id)
	logger.Debug("worker started")
	defer logger.Debug("worker stopped")

	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()

	var item T
	for {
		if ctx.Err() != nil {
			return
		}
		if !p.queue.PopFrontAndGet(&item) {
			select {
			case <-ctx.Done():
				return
			case <-p.wake:
			case <-ticker.C:
			}
			continue
		}
		if err := p.handler(ctx, item); err != nil {
			p.failed.Add(1)
			logger.Error("handling item", "err", err)
			continue
		}
		p.processed.Add(1)
	}
}
