package persist256

// Combine is the value-merge function passed to InsertWithKey: given the
// key, the newly-inserted value, and the value already stored, it
// produces the value to keep.
type Combine func(k Key, newVal, oldVal interface{}) interface{}

// Insert adds k/v to m, overwriting any existing value for k.
func Insert(k Key, v interface{}, m Map) Map {
	return InsertWithKey(func(_ Key, newVal, _ interface{}) interface{} { return newVal }, k, v, m)
}

// InsertWith adds k/v to m; if k is already present, the stored value is
// replaced by combine(v, stored).
func InsertWith(combine func(newVal, oldVal interface{}) interface{}, k Key, v interface{}, m Map) Map {
	return InsertWithKey(func(_ Key, newVal, oldVal interface{}) interface{} {
		return combine(newVal, oldVal)
	}, k, v, m)
}

// InsertWithKey adds k/v to m; if k is already present, the stored value
// is replaced by combine(k, v, stored) (spec §4.6). If the resulting
// value is pointer/value-identical to what was already stored, the
// original map is returned unchanged (spec §5, §8 law 11).
func InsertWithKey(combine Combine, k Key, v interface{}, m Map) Map {
	newRoot, grew := insertNode(m.root, k, v, 0, combine)
	if newRoot == m.root {
		return m
	}
	size := m.size
	if grew {
		size++
	}
	return newMap(newRoot, size)
}

// insertNode returns the new subtrie for inserting k/v under n (which is
// at the given path depth), and whether the entry count grew. When the
// update is a no-op it returns n itself so the caller's pointer-equality
// check against the old child also short-circuits (spec §4.6, §5).
func insertNode(n node, k Key, v interface{}, depth int, combine Combine) (node, bool) {
	switch t := n.(type) {
	case *emptyNode:
		return &leafNode{key: k, val: v}, true

	case *leafNode:
		if t.key.Equal(k) {
			newVal := combine(k, v, t.val)
			if newVal == t.val {
				return t, false
			}
			return &leafNode{key: k, val: newVal}, false
		}
		return buildDivergentChain(t, k, v, depth), true

	case *oneNode:
		seg := segmentAt(k, depth)
		if seg == t.seg {
			child, grew := insertNode(t.child, k, v, depth+1, combine)
			if child == t.child {
				return t, false
			}
			return &oneNode{seg: t.seg, child: child}, grew
		}
		return insertDiverge(t.seg, t.child, seg, &leafNode{key: k, val: v}), true

	default:
		bitmap, children, ok := asInterior(n)
		assertf(ok, "insertNode: unknown node type %T", n)
		seg := segmentAt(k, depth)
		if testBit(bitmap, seg) {
			idx := indexFromSegment(bitmap, seg)
			child, grew := insertNode(children[idx], k, v, depth+1, combine)
			if child == children[idx] {
				return n, false
			}
			return buildNode(bitmap, updateAt(children, idx, child)), grew
		}
		idx := indexFromSegment(bitmap, seg)
		newBitmap := bitmap | (uint64(1) << seg)
		newChildren := insertAt(children, idx, &leafNode{key: k, val: v})
		return buildNode(newBitmap, newChildren), true
	}
}

// insertDiverge assembles the two-slot node for a pair of children at
// distinct segments segA, segB (segA < segB or not).
func insertDiverge(segA uint8, childA node, segB uint8, childB node) node {
	bitmap := uint64(1)<<segA | uint64(1)<<segB
	var children []node
	if segA < segB {
		children = []node{childA, childB}
	} else {
		children = []node{childB, childA}
	}
	return buildNode(bitmap, children)
}

// buildDivergentChain handles inserting k/v when descent lands on a Leaf
// for a different key (spec §4.6): it walks the two keys' remaining path
// tails to find their longest common segment prefix, producing a chain of
// One nodes down to that point terminated by a Two node holding both
// leaves in segment order.
func buildDivergentChain(existing *leafNode, k Key, v interface{}, depth int) node {
	newLeaf := &leafNode{key: k, val: v}

	d := depth
	for {
		assertf(d < PathLen,
			"insert: path exhausted between distinct keys %s and %s", existing.key, k)

		segExisting := segmentAt(existing.key, d)
		segNew := segmentAt(k, d)
		if segExisting != segNew {
			result := insertDiverge(segExisting, existing, segNew, newLeaf)
			for dd := d - 1; dd >= depth; dd-- {
				result = &oneNode{seg: segmentAt(k, dd), child: result}
			}
			return result
		}
		d++
	}
}
