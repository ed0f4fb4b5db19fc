package concurrent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type pair struct {
	key int
	val string
}

func collect(m *Multimap[int, string]) []pair {
	var pairs []pair
	m.Range(func(key int, val string) bool {
		pairs = append(pairs, pair{key, val})

		return true
	})

	return pairs
}

func TestMultimap_DescendingByDefault(t *testing.T) {
	m := NewMultimap[int, string]()
	m.Insert(1, "a")
	m.Insert(3, "b")
	m.Insert(2, "c")
	m.Insert(3, "d")

	assert.Equal(t, []pair{{3, "b"}, {3, "d"}, {2, "c"}, {1, "a"}}, collect(m))
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 2, m.Count(3))
	assert.Equal(t, []string{"b", "d"}, m.Get(3))
	assert.Nil(t, m.Get(5))
	assert.True(t, m.Contains(2))
	assert.False(t, m.Contains(5))

	key, val, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, 3, key)
	assert.Equal(t, "b", val)
}

func TestMultimap_PopFirstAndRemove(t *testing.T) {
	m := NewMultimap[int, string]()
	m.Insert(5, "x")
	m.Insert(5, "y")
	m.Insert(4, "z")

	key, val, ok := m.PopFirst()
	assert.True(t, ok)
	assert.Equal(t, 5, key)
	assert.Equal(t, "x", val)
	assert.Equal(t, 2, m.Len())

	assert.Equal(t, 1, m.Remove(5))
	assert.Equal(t, 0, m.Remove(5))

	key, val, ok = m.PopFirst()
	assert.True(t, ok)
	assert.Equal(t, 4, key)
	assert.Equal(t, "z", val)

	_, _, ok = m.PopFirst()
	assert.False(t, ok)
	_, _, ok = m.First()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMultimap_CustomOrder(t *testing.T) {
	m := NewMultimapFunc[string, int](strings.Compare)
	m.Insert("b", 2)
	m.Insert("a", 1)

	key, val, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, "a", key)
	assert.Equal(t, 1, val)
}

func TestMultimap_ConcurrentInsert(t *testing.T) {
	m := NewMultimap[int, int]()

	var gr errgroup.Group
	for w := 0; w < 4; w++ {
		gr.Go(func() error {
			for i := 0; i < 250; i++ {
				m.Insert(i%10, w)
			}

			return nil
		})
	}
	require.NoError(t, gr.Wait())

	assert.Equal(t, 1000, m.Len())
	assert.Equal(t, 100, m.Count(0))
}
