package concurrent

import (
	"sync"
)

// ConcurrentDeque is a double-ended queue guarded by a single mutex.
//
// Unsynchronized access to the underlying Deque is only available through a
// Guard obtained from Lock or through WithLock, so the exclusivity a caller
// needs for bulk work is always held for the duration of that work.
//
// The zero value is an empty deque ready to use.
type ConcurrentDeque[T any] struct {
	mu    sync.Mutex
	store *Deque[T]
}

// storage returns the underlying deque, creating it on first use so the zero
// ConcurrentDeque is ready to use. c.mu must be held.
func (c *ConcurrentDeque[T]) storage() *Deque[T] {
	if c.store == nil {
		c.store = NewDeque[T]()
	}

	return c.store
}

func NewConcurrentDeque[T any]() *ConcurrentDeque[T] {
	return &ConcurrentDeque[T]{
		store: NewDeque[T](),
	}
}

func (c *ConcurrentDeque[T]) PushBack(v T) {
	defer lockUnlock(&c.mu)()

	c.storage().PushBack(v)
}

func (c *ConcurrentDeque[T]) PushFront(v T) {
	defer lockUnlock(&c.mu)()

	c.storage().PushFront(v)
}

// Front returns a copy of the first element without removing it.
func (c *ConcurrentDeque[T]) Front() (T, bool) {
	defer lockUnlock(&c.mu)()

	return c.storage().Front()
}

// Back returns a copy of the last element without removing it.
func (c *ConcurrentDeque[T]) Back() (T, bool) {
	defer lockUnlock(&c.mu)()

	return c.storage().Back()
}

// PopFront discards the first element. It returns ErrEmpty if there is none.
func (c *ConcurrentDeque[T]) PopFront() error {
	defer lockUnlock(&c.mu)()

	return c.storage().PopFront()
}

// PopBack discards the last element. It returns ErrEmpty if there is none.
func (c *ConcurrentDeque[T]) PopBack() error {
	defer lockUnlock(&c.mu)()

	return c.storage().PopBack()
}

// PopFrontAndGet removes the first element and stores it in out.
// When the deque is empty it returns false and leaves out untouched.
func (c *ConcurrentDeque[T]) PopFrontAndGet(out *T) bool {
	v, ok := c.TryPopFront()
	if ok {
		*out = v
	}

	return ok
}

// PopBackAndGet removes the last element and stores it in out.
// When the deque is empty it returns false and leaves out untouched.
func (c *ConcurrentDeque[T]) PopBackAndGet(out *T) bool {
	v, ok := c.TryPopBack()
	if ok {
		*out = v
	}

	return ok
}

func (c *ConcurrentDeque[T]) TryPopFront() (T, bool) {
	defer lockUnlock(&c.mu)()

	return c.storage().TryPopFront()
}

func (c *ConcurrentDeque[T]) TryPopBack() (T, bool) {
	defer lockUnlock(&c.mu)()

	return c.storage().TryPopBack()
}

// Drain removes every element and returns them front to back.
func (c *ConcurrentDeque[T]) Drain() []T {
	defer lockUnlock(&c.mu)()

	values := c.storage().Values()
	c.storage().Clear()

	return values
}

// WasSize reports how many elements the deque held while the lock was taken.
// The count may be stale as soon as it is returned.
func (c *ConcurrentDeque[T]) WasSize() int {
	defer lockUnlock(&c.mu)()

	return c.storage().Len()
}

// Lock acquires the deque's mutex and returns a Guard giving unsynchronized
// access until Release is called. The deque's own methods block while the
// guard is held, so a goroutine holding it must only go through the guard.
func (c *ConcurrentDeque[T]) Lock() *Guard[T] {
	c.mu.Lock()
	c.storage()

	return &Guard[T]{owner: c}
}

// WithLock runs fn with the mutex held. The Deque passed to fn must not be
// retained after fn returns.
func (c *ConcurrentDeque[T]) WithLock(fn func(store *Deque[T])) {
	g := c.Lock()
	defer g.Release()

	fn(g.Storage())
}

// Guard is proof that its holder owns the ConcurrentDeque's mutex.
type Guard[T any] struct {
	owner    *ConcurrentDeque[T]
	released bool
}

func (g *Guard[T]) mustHold() *Deque[T] {
	if g.released {
		panic("concurrent: use of released deque guard")
	}

	return g.owner.store
}

// Release unlocks the deque. Calling it more than once is a no-op.
func (g *Guard[T]) Release() {
	if g.released {
		return
	}
	g.released = true
	g.owner.mu.Unlock()
}

func (g *Guard[T]) PushBackNoLock(v T) {
	g.mustHold().PushBack(v)
}

func (g *Guard[T]) PushFrontNoLock(v T) {
	g.mustHold().PushFront(v)
}

func (g *Guard[T]) Front() (T, bool) {
	return g.mustHold().Front()
}

func (g *Guard[T]) Back() (T, bool) {
	return g.mustHold().Back()
}

func (g *Guard[T]) Len() int {
	return g.mustHold().Len()
}

// Storage returns the underlying deque. It is valid only until Release.
func (g *Guard[T]) Storage() *Deque[T] {
	return g.mustHold()
}
