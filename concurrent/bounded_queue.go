package concurrent

import (
	"context"

	"github.com/juju/errors"
)

// BoundedQueue is a fixed-capacity FIFO queue for many producers and
// consumers.
type BoundedQueue[T any] struct {
	c chan T
}

func NewBoundedQueue[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity < 1 {
		return nil, errors.NotValidf("bounded queue capacity %d", capacity)
	}

	return &BoundedQueue[T]{
		c: make(chan T, capacity),
	}, nil
}

// TryPush enqueues v unless the queue is full.
func (q *BoundedQueue[T]) TryPush(v T) bool {
	select {
	case q.c <- v:
		return true
	default:
		return false
	}
}

// TryPop dequeues the oldest element unless the queue is empty.
func (q *BoundedQueue[T]) TryPop() (T, bool) {
	select {
	case v := <-q.c:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Push waits for room and enqueues v.
func (q *BoundedQueue[T]) Push(ctx context.Context, v T) error {
	select {
	case q.c <- v:
		return nil
	case <-ctx.Done():
		return errors.Trace(ctx.Err())
	}
}

// Pop waits for an element and dequeues it.
func (q *BoundedQueue[T]) Pop(ctx context.Context) (T, error) {
	select {
	case v := <-q.c:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, errors.Trace(ctx.Err())
	}
}

// WasSize is a snapshot of the element count.
func (q *BoundedQueue[T]) WasSize() int {
	return len(q.c)
}

func (q *BoundedQueue[T]) WasEmpty() bool {
	return len(q.c) == 0
}

func (q *BoundedQueue[T]) WasFull() bool {
	return len(q.c) == cap(q.c)
}

func (q *BoundedQueue[T]) Capacity() int {
	return cap(q.c)
}
