package persist256

// Union merges a and b, keeping a's value for any key present in both.
func Union(a, b Map) Map {
	return UnionWithKey(func(_ Key, left, _ interface{}) interface{} { return left }, a, b)
}

// UnionWith merges a and b, resolving collisions with combine(aVal, bVal).
func UnionWith(combine func(left, right interface{}) interface{}, a, b Map) Map {
	return UnionWithKey(func(_ Key, left, right interface{}) interface{} {
		return combine(left, right)
	}, a, b)
}

// UnionWithKey merges a and b, resolving collisions with
// combine(k, aVal, bVal) (spec §4.8: combine always sees arguments in
// (left, right) order, regardless of which side the recursion happened to
// land on first).
func UnionWithKey(combine Combine, a, b Map) Map {
	root, size := unionNode(combine, a.root, b.root, 0)
	return newMap(root, size)
}

// nodeSize counts the leaves reachable from n; used by union (when one
// whole side can be taken as-is without walking it entry by entry for
// correctness) and by SplitLookup, only for the resulting Map's Size().
func nodeSize(n node) int {
	switch t := n.(type) {
	case *emptyNode:
		return 0
	case *leafNode:
		_ = t
		return 1
	default:
		_, children, ok := asInterior(n)
		assertf(ok, "nodeSize: unknown node type %T", n)
		total := 0
		for _, c := range children {
			total += nodeSize(c)
		}
		return total
	}
}

func unionNode(combine Combine, a, b node, depth int) (node, int) {
	if isEmptyNode(a) {
		return b, nodeSize(b)
	}
	if isEmptyNode(b) {
		return a, nodeSize(a)
	}
	if leafA, ok := a.(*leafNode); ok {
		newB, grew := insertNode(b, leafA.key, leafA.val, depth,
			func(k Key, newVal, oldVal interface{}) interface{} { return combine(k, newVal, oldVal) })
		size := nodeSize(b)
		if grew {
			size++
		}
		return newB, size
	}
	if leafB, ok := b.(*leafNode); ok {
		newA, grew := insertNode(a, leafB.key, leafB.val, depth,
			func(k Key, newVal, oldVal interface{}) interface{} { return combine(k, oldVal, newVal) })
		size := nodeSize(a)
		if grew {
			size++
		}
		return newA, size
	}

	bmA, childrenA, okA := asInterior(a)
	bmB, childrenB, okB := asInterior(b)
	assertf(okA && okB, "unionNode: unknown node types %T, %T", a, b)

	unionBM := bmA | bmB
	resultChildren := make([]node, 0, popcount64(unionBM))
	total := 0
	for seg, remaining := uint8(0), unionBM; remaining != 0; seg, remaining = seg+1, remaining>>1 {
		if remaining&1 == 0 {
			continue
		}
		inA := testBit(bmA, seg)
		inB := testBit(bmB, seg)
		var child node
		var cnt int
		switch {
		case inA && inB:
			childA := childrenA[indexFromSegment(bmA, seg)]
			childB := childrenB[indexFromSegment(bmB, seg)]
			child, cnt = unionNode(combine, childA, childB, depth+1)
		case inA:
			child = childrenA[indexFromSegment(bmA, seg)]
			cnt = nodeSize(child)
		default:
			child = childrenB[indexFromSegment(bmB, seg)]
			cnt = nodeSize(child)
		}
		resultChildren = append(resultChildren, child)
		total += cnt
	}
	return buildNode(unionBM, resultChildren), total
}
