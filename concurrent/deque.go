// Package concurrent holds containers meant to be shared between goroutines:
// a lock-guarded deque, hash maps and sets, an ordered multimap and a bounded
// queue.
package concurrent

import (
	"github.com/edwingeng/deque/v2"
)

// Deque is an unsynchronized double-ended queue. It is the storage behind
// ConcurrentDeque and is only safe for use by one goroutine at a time.
type Deque[T any] struct {
	dq *deque.Deque[T]
}

func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{
		dq: deque.NewDeque[T](),
	}
}

func (d *Deque[T]) PushBack(v T) {
	d.dq.PushBack(v)
}

func (d *Deque[T]) PushFront(v T) {
	d.dq.PushFront(v)
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	return d.dq.Front()
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	return d.dq.Back()
}

func (d *Deque[T]) TryPopFront() (T, bool) {
	return d.dq.TryPopFront()
}

func (d *Deque[T]) TryPopBack() (T, bool) {
	return d.dq.TryPopBack()
}

func (d *Deque[T]) PopFront() error {
	if _, ok := d.dq.TryPopFront(); !ok {
		return ErrEmpty
	}

	return nil
}

func (d *Deque[T]) PopBack() error {
	if _, ok := d.dq.TryPopBack(); !ok {
		return ErrEmpty
	}

	return nil
}

func (d *Deque[T]) Len() int {
	return d.dq.Len()
}

func (d *Deque[T]) IsEmpty() bool {
	return d.dq.IsEmpty()
}

// Range calls fn for every element from front to back until fn returns false.
// fn must not modify the deque.
func (d *Deque[T]) Range(fn func(i int, v T) bool) {
	d.dq.Range(fn)
}

// Values copies the elements front to back.
func (d *Deque[T]) Values() []T {
	return d.dq.Dump()
}

func (d *Deque[T]) Clear() {
	d.dq.Clear()
}
