package persist256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	p256 "github.com/go-trie/persist256"
)

func TestSplitLookupFound(t *testing.T) {
	m := fromPairs(map[uint64]interface{}{1: "a", 2: "b", 3: "c", 4: "d"})
	less, v, found, greater := p256.SplitLookup(k(2), m)
	assert.True(t, found)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, less.Size())
	assert.Equal(t, 2, greater.Size())
	_, ok := p256.Lookup(k(1), less)
	assert.True(t, ok)
	_, ok = p256.Lookup(k(3), greater)
	assert.True(t, ok)
	_, ok = p256.Lookup(k(4), greater)
	assert.True(t, ok)
	assert.True(t, p256.Valid(less))
	assert.True(t, p256.Valid(greater))
}

func TestSplitLookupNotFound(t *testing.T) {
	m := fromPairs(map[uint64]interface{}{1: "a", 3: "c", 5: "e"})
	less, v, found, greater := p256.SplitLookup(k(2), m)
	assert.False(t, found)
	assert.Nil(t, v)
	assert.Equal(t, 1, less.Size())
	assert.Equal(t, 2, greater.Size())
}

func TestSplitLookupEmptyMap(t *testing.T) {
	less, v, found, greater := p256.SplitLookup(k(1), p256.Empty())
	assert.False(t, found)
	assert.Nil(t, v)
	assert.True(t, less.IsEmpty())
	assert.True(t, greater.IsEmpty())
}

// TestSplitLookupLargeFanout recreates spec §8 scenario 6: 128 sequential
// keys split at the midpoint.
func TestSplitLookupLargeFanout(t *testing.T) {
	m := p256.Empty()
	for i := 0; i < 128; i++ {
		m = p256.Insert(p256.NewKey(uint64(i), 0, 0, 0), i, m)
	}
	mid := p256.NewKey(64, 0, 0, 0)
	less, v, found, greater := p256.SplitLookup(mid, m)
	assert.True(t, found)
	assert.Equal(t, 64, v)
	assert.Equal(t, 64, less.Size())
	assert.Equal(t, 63, greater.Size())
	assert.True(t, p256.Valid(less))
	assert.True(t, p256.Valid(greater))

	for i := 0; i < 64; i++ {
		_, ok := p256.Lookup(p256.NewKey(uint64(i), 0, 0, 0), less)
		assert.True(t, ok, "less should hold %d", i)
	}
	for i := 65; i < 128; i++ {
		_, ok := p256.Lookup(p256.NewKey(uint64(i), 0, 0, 0), greater)
		assert.True(t, ok, "greater should hold %d", i)
	}
}

func TestSplitLookupBoundaries(t *testing.T) {
	m := fromPairs(map[uint64]interface{}{1: "a", 2: "b", 3: "c"})

	less, _, found, greater := p256.SplitLookup(k(0), m)
	assert.False(t, found)
	assert.True(t, less.IsEmpty())
	assert.Equal(t, 3, greater.Size())

	less, _, found, greater = p256.SplitLookup(k(99), m)
	assert.False(t, found)
	assert.Equal(t, 3, less.Size())
	assert.True(t, greater.IsEmpty())
}
