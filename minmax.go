package persist256

// minView walks the leftmost spine of n (spec §4.12). Segment order
// within a node is ascending by bit index, and ascending segment order is
// key order (spec §4.13), so the leftmost child at every level holds the
// smallest key. It returns the excised entry together with n re-normalized
// through dropEmpty, which is how the smallest slot's removal floats an
// Empty upward if that was the node's only child.
func minView(n node) (k Key, v interface{}, rest node, ok bool) {
	switch t := n.(type) {
	case *emptyNode:
		return Key{}, nil, theEmpty, false
	case *leafNode:
		return t.key, t.val, theEmpty, true
	default:
		bitmap, children, interior := asInterior(n)
		assertf(interior, "minView: unknown node type %T", n)
		k, v, newFirst, _ := minView(children[0])
		newChildren := make([]node, len(children))
		copy(newChildren, children)
		newChildren[0] = newFirst
		return k, v, dropEmpty(bitmap, newChildren), true
	}
}

// maxView is the mirror of minView over the rightmost spine.
func maxView(n node) (k Key, v interface{}, rest node, ok bool) {
	switch t := n.(type) {
	case *emptyNode:
		return Key{}, nil, theEmpty, false
	case *leafNode:
		return t.key, t.val, theEmpty, true
	default:
		bitmap, children, interior := asInterior(n)
		assertf(interior, "maxView: unknown node type %T", n)
		last := len(children) - 1
		k, v, newLast, _ := maxView(children[last])
		newChildren := make([]node, len(children))
		copy(newChildren, children)
		newChildren[last] = newLast
		return k, v, dropEmpty(bitmap, newChildren), true
	}
}

func minEntry(n node) (Key, interface{}, bool) {
	k, v, _, ok := minView(n)
	return k, v, ok
}

func maxEntry(n node) (Key, interface{}, bool) {
	k, v, _, ok := maxView(n)
	return k, v, ok
}

// MinView returns the entry with the smallest key, together with the map
// that remains once it's removed (spec §4.12).
func MinView(m Map) (Key, interface{}, Map, bool) {
	k, v, rest, ok := minView(m.root)
	if !ok {
		return Key{}, nil, m, false
	}
	return k, v, newMap(rest, m.size-1), true
}

// MaxView returns the entry with the largest key, together with the map
// that remains once it's removed (spec §4.12).
func MaxView(m Map) (Key, interface{}, Map, bool) {
	k, v, rest, ok := maxView(m.root)
	if !ok {
		return Key{}, nil, m, false
	}
	return k, v, newMap(rest, m.size-1), true
}
