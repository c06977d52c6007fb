package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet("b", "a", "b", "c")

	assert.Equal(t, []string{"b", "a", "c"}, s.Items())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("d"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("d"))
}

func TestOrderedSet_ZeroValue(t *testing.T) {
	var s OrderedSet[int]

	assert.False(t, s.Has(1))
	assert.True(t, s.Add(1))
	assert.Equal(t, []int{1}, s.Items())
}

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("z", 3)

	assert.Equal(t, []string{"z", "a"}, m.Keys())

	v, ok := m.Get("z")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	var visited []string
	m.Range(func(k string, _ int) bool {
		visited = append(visited, k)
		return false
	})
	assert.Equal(t, []string{"z"}, visited)
}

func TestOrderedMap_CloneIsIndependent(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("a", 1)

	c := m.Clone()
	c.Set("a", 2)
	c.Set("b", 3)

	v, _ := m.Get("a")
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, Unique([]string{"x", "y", "x"}))
	assert.Empty(t, Unique([]string(nil)))
}

func TestHasSurroundingSpace(t *testing.T) {
	assert.True(t, HasSurroundingSpace(" a"))
	assert.True(t, HasSurroundingSpace("a\t"))
	assert.False(t, HasSurroundingSpace("a b"))
	assert.True(t, IsBlank("  "))
}
