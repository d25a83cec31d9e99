package persist256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	p256 "github.com/go-trie/persist256"
)

func fromPairs(pairs map[uint64]interface{}) p256.Map {
	m := p256.Empty()
	for w, v := range pairs {
		m = p256.Insert(k(w), v, m)
	}
	return m
}

func TestUnionDisjoint(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "a", 2: "b"})
	b := fromPairs(map[uint64]interface{}{3: "c", 4: "d"})
	u := p256.Union(a, b)
	assert.Equal(t, 4, u.Size())
	for _, w := range []uint64{1, 2, 3, 4} {
		_, ok := p256.Lookup(k(w), u)
		assert.True(t, ok, "key %d", w)
	}
	assert.True(t, p256.Valid(u))
}

func TestUnionOverlapKeepsLeft(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "a-val"})
	b := fromPairs(map[uint64]interface{}{1: "b-val"})
	u := p256.Union(a, b)
	assert.Equal(t, 1, u.Size())
	v, _ := p256.Lookup(k(1), u)
	assert.Equal(t, "a-val", v)
}

func TestUnionWithCombine(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: 10})
	b := fromPairs(map[uint64]interface{}{1: 5})
	u := p256.UnionWith(func(left, right interface{}) interface{} {
		return left.(int) + right.(int)
	}, a, b)
	v, _ := p256.Lookup(k(1), u)
	assert.Equal(t, 15, v)
}

func TestUnionWithKeyOrderingIsLeftRight(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "left"})
	b := fromPairs(map[uint64]interface{}{1: "right"})

	var sawKey p256.Key
	var sawLeft, sawRight interface{}
	u := p256.UnionWithKey(func(key p256.Key, left, right interface{}) interface{} {
		sawKey, sawLeft, sawRight = key, left, right
		return left
	}, a, b)
	_ = u
	assert.Equal(t, k(1), sawKey)
	assert.Equal(t, "left", sawLeft)
	assert.Equal(t, "right", sawRight)
}

func TestUnionWithEmpty(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "a"})
	u := p256.Union(a, p256.Empty())
	assert.Equal(t, a.Size(), u.Size())
	u2 := p256.Union(p256.Empty(), a)
	assert.Equal(t, a.Size(), u2.Size())
}

func TestUnionMatchesSequentialInsert(t *testing.T) {
	a := fromPairs(map[uint64]interface{}{1: "a", 5: "e", 9: "i"})
	b := fromPairs(map[uint64]interface{}{3: "c", 5: "e2", 7: "g"})
	u := p256.Union(a, b)

	expect := p256.Empty()
	for _, kv := range p256.ToList(b) {
		expect = p256.Insert(kv.Key, kv.Val, expect)
	}
	for _, kv := range p256.ToList(a) {
		expect = p256.Insert(kv.Key, kv.Val, expect)
	}
	assert.Equal(t, p256.ToList(expect), p256.ToList(u))
}
