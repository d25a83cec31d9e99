package persist256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	p256 "github.com/go-trie/persist256"
)

func TestIntersectionBasic(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "a", 2: "b", 3: "c"})
	b := fromPairs(map[uint64]interface{}{2: "x", 3: "y", 4: "z"})
	i := p256.Intersection(a, b)
	assert.Equal(t, 2, i.Size())
	v2, ok := p256.Lookup(k(2), i)
	assert.True(t, ok)
	assert.Equal(t, "b", v2, "keeps left's value")
	_, ok = p256.Lookup(k(1), i)
	assert.False(t, ok)
	assert.True(t, p256.Valid(i))
}

func TestIntersectionWithEitherEmpty(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "a"})
	i := p256.Intersection(a, p256.Empty())
	assert.True(t, i.IsEmpty())
	i2 := p256.Intersection(p256.Empty(), a)
	assert.True(t, i2.IsEmpty())
}

func TestIntersectionWithCombine(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: 10, 2: 20})
	b := fromPairs(map[uint64]interface{}{1: 1, 2: 2})
	i := p256.IntersectionWith(func(left, right interface{}) interface{} {
		return left.(int) * right.(int)
	}, a, b)
	v, _ := p256.Lookup(k(2), i)
	assert.Equal(t, 40, v)
}

func TestIntersectionWhenFiltersKeys(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: 10, 2: 20, 3: 30})
	b := fromPairs(map[uint64]interface{}{1: 1, 2: 2, 3: 3})
	i := p256.IntersectionWhen(func(key p256.Key, left, right interface{}) (interface{}, bool) {
		if left.(int) > 15 {
			return left, true
		}
		return nil, false
	}, a, b)
	assert.Equal(t, 2, i.Size())
	_, ok := p256.Lookup(k(1), i)
	assert.False(t, ok)
	v2, ok := p256.Lookup(k(2), i)
	assert.True(t, ok)
	assert.Equal(t, 20, v2)
}

func TestFoldOverIntersectionSeesBothSides(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: 10, 2: 20})
	b := fromPairs(map[uint64]interface{}{2: 2, 3: 3})
	sum := p256.FoldOverIntersection(func(acc interface{}, key p256.Key, left, right interface{}) interface{} {
		return acc.(int) + left.(int) + right.(int)
	}, 0, a, b)
	assert.Equal(t, 22, sum)
}

func TestFoldOverIntersectionNoOverlap(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: 10})
	b := fromPairs(map[uint64]interface{}{2: 20})
	sum := p256.FoldOverIntersection(func(acc interface{}, key p256.Key, left, right interface{}) interface{} {
		return acc.(int) + 1
	}, 0, a, b)
	assert.Equal(t, 0, sum)
}

func TestRestrictKeys(t *testing.T) {
	m := fromPairs(map[uint64]interface{}{1: "a", 2: "b", 3: "c"})
	keys := fromPairs(map[uint64]interface{}{2: nil, 3: nil})
	r := p256.RestrictKeys(m, keys)
	assert.Equal(t, 2, r.Size())
	v, ok := p256.Lookup(k(2), r)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	_, ok = p256.Lookup(k(1), r)
	assert.False(t, ok)
}

func TestWithoutKeys(t *testing.T) {
	m := fromPairs(map[uint64]interface{}{1: "a", 2: "b", 3: "c"})
	keys := fromPairs(map[uint64]interface{}{2: nil})
	w := p256.WithoutKeys(m, keys)
	assert.Equal(t, 2, w.Size())
	_, ok := p256.Lookup(k(2), w)
	assert.False(t, ok)
	v, ok := p256.Lookup(k(1), w)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestIntersectionCardinalityLaw(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: 1, 2: 2, 3: 3, 4: 4})
	b := fromPairs(map[uint64]interface{}{3: 3, 4: 4, 5: 5, 6: 6})
	u := p256.Union(a, b)
	i := p256.Intersection(a, b)
	assert.Equal(t, u.Size()+i.Size(), a.Size()+b.Size())
}
