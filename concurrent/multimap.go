package concurrent

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/exp/constraints"
)

// Multimap is an ordered map allowing several values per key, safe for
// concurrent use. Values under one key keep their insertion order.
type Multimap[K any, V any] struct {
	mu   sync.RWMutex
	tree *treemap.Map
	size int
}

// NewMultimap returns a Multimap ordered from the greatest key to the least.
func NewMultimap[K constraints.Ordered, V any]() *Multimap[K, V] {
	return NewMultimapFunc[K, V](func(a, b K) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
}

// NewMultimapFunc returns a Multimap ordered by compare, which follows the
// usual negative, zero, positive convention.
func NewMultimapFunc[K any, V any](compare func(a, b K) int) *Multimap[K, V] {
	return &Multimap[K, V]{
		tree: treemap.NewWith(func(a, b interface{}) int {
			return compare(a.(K), b.(K))
		}),
	}
}

func (m *Multimap[K, V]) values(key K) []V {
	found, ok := m.tree.Get(key)
	if !ok {
		return nil
	}

	return found.([]V)
}

func (m *Multimap[K, V]) Insert(key K, val V) {
	defer lockUnlock(&m.mu)()

	m.tree.Put(key, append(m.values(key), val))
	m.size++
}

// Get returns a copy of the values stored under key.
func (m *Multimap[K, V]) Get(key K) []V {
	defer lockUnlock(m.mu.RLocker())()

	values := m.values(key)
	if values == nil {
		return nil
	}

	return append([]V(nil), values...)
}

func (m *Multimap[K, V]) Count(key K) int {
	defer lockUnlock(m.mu.RLocker())()

	return len(m.values(key))
}

func (m *Multimap[K, V]) Contains(key K) bool {
	defer lockUnlock(m.mu.RLocker())()

	_, ok := m.tree.Get(key)

	return ok
}

// First returns the first key in order with its earliest inserted value.
func (m *Multimap[K, V]) First() (K, V, bool) {
	defer lockUnlock(m.mu.RLocker())()

	return m.first()
}

func (m *Multimap[K, V]) first() (K, V, bool) {
	key, found := m.tree.Min()
	if key == nil {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	return key.(K), found.([]V)[0], true
}

// PopFirst removes and returns what First would return.
func (m *Multimap[K, V]) PopFirst() (K, V, bool) {
	defer lockUnlock(&m.mu)()

	key, val, ok := m.first()
	if !ok {
		return key, val, false
	}
	rest := m.values(key)[1:]
	if len(rest) == 0 {
		m.tree.Remove(key)
	} else {
		m.tree.Put(key, rest)
	}
	m.size--

	return key, val, true
}

// Remove deletes every value under key and returns how many there were.
func (m *Multimap[K, V]) Remove(key K) int {
	defer lockUnlock(&m.mu)()

	n := len(m.values(key))
	if n > 0 {
		m.tree.Remove(key)
		m.size -= n
	}

	return n
}

// Len returns the total number of values.
func (m *Multimap[K, V]) Len() int {
	defer lockUnlock(m.mu.RLocker())()

	return m.size
}

// Range visits pairs in key order, then insertion order, until fn returns
// false. fn must not call back into the Multimap.
func (m *Multimap[K, V]) Range(fn func(key K, val V) bool) {
	defer lockUnlock(m.mu.RLocker())()

	it := m.tree.Iterator()
	for it.Next() {
		key := it.Key().(K)
		for _, val := range it.Value().([]V) {
			if !fn(key, val) {
				return
			}
		}
	}
}
