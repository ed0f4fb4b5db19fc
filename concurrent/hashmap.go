package concurrent

import (
	"github.com/puzpuzpuz/xsync/v3"
)

type config struct {
	presize int
}

type Option func(*config)

// WithPresize sizes the table for n entries up front.
func WithPresize(n int) Option {
	return func(c *config) {
		c.presize = n
	}
}

func newMapOf[K comparable, V any](opts []Option) *xsync.MapOf[K, V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.presize > 0 {
		return xsync.NewMapOf[K, V](xsync.WithPresize(cfg.presize))
	}

	return xsync.NewMapOf[K, V]()
}

// HashMap is a hash map safe for concurrent use.
type HashMap[K comparable, V any] struct {
	m *xsync.MapOf[K, V]
}

func NewHashMap[K comparable, V any](opts ...Option) *HashMap[K, V] {
	return &HashMap[K, V]{
		m: newMapOf[K, V](opts),
	}
}

func (h *HashMap[K, V]) Get(key K) (V, bool) {
	return h.m.Load(key)
}

func (h *HashMap[K, V]) Set(key K, val V) {
	h.m.Store(key, val)
}

// Insert stores val only if key is absent and reports whether it did.
func (h *HashMap[K, V]) Insert(key K, val V) bool {
	_, loaded := h.m.LoadOrStore(key, val)

	return !loaded
}

// Delete removes key and returns the value it held.
func (h *HashMap[K, V]) Delete(key K) (V, bool) {
	return h.m.LoadAndDelete(key)
}

func (h *HashMap[K, V]) Contains(key K) bool {
	_, ok := h.m.Load(key)

	return ok
}

// Update atomically replaces the value under key with fn(old, found).
func (h *HashMap[K, V]) Update(key K, fn func(old V, found bool) V) V {
	v, _ := h.m.Compute(key, func(old V, loaded bool) (V, bool) {
		return fn(old, loaded), false
	})

	return v
}

func (h *HashMap[K, V]) Len() int {
	return h.m.Size()
}

// Range visits entries in no particular order until fn returns false.
// Entries changed concurrently may or may not be seen.
func (h *HashMap[K, V]) Range(fn func(key K, val V) bool) {
	h.m.Range(fn)
}

func (h *HashMap[K, V]) Clear() {
	h.m.Clear()
}

// HashSet is a hash set safe for concurrent use.
type HashSet[V comparable] struct {
	m *xsync.MapOf[V, struct{}]
}

func NewHashSet[V comparable](opts ...Option) *HashSet[V] {
	return &HashSet[V]{
		m: newMapOf[V, struct{}](opts),
	}
}

// Add inserts v and reports whether it was not already present.
func (s *HashSet[V]) Add(v V) bool {
	_, loaded := s.m.LoadOrStore(v, struct{}{})

	return !loaded
}

func (s *HashSet[V]) Contains(v V) bool {
	_, ok := s.m.Load(v)

	return ok
}

// Remove deletes v and reports whether it was present.
func (s *HashSet[V]) Remove(v V) bool {
	_, ok := s.m.LoadAndDelete(v)

	return ok
}

func (s *HashSet[V]) Len() int {
	return s.m.Size()
}

func (s *HashSet[V]) Range(fn func(v V) bool) {
	s.m.Range(func(v V, _ struct{}) bool {
		return fn(v)
	})
}

func (s *HashSet[V]) Values() []V {
	values := make([]V, 0, s.m.Size())
	s.Range(func(v V) bool {
		values = append(values, v)

		return true
	})

	return values
}

func (s *HashSet[V]) Clear() {
	s.m.Clear()
}
