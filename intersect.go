package persist256

// Intersection keeps only the keys present in both a and b, taking a's
// value for each.
func Intersection(a, b Map) Map {
	return IntersectionWithKey(func(_ Key, left, _ interface{}) interface{} { return left }, a, b)
}

// IntersectionWith keeps only the keys present in both a and b, combining
// values with combine(aVal, bVal).
func IntersectionWith(combine func(left, right interface{}) interface{}, a, b Map) Map {
	return IntersectionWithKey(func(_ Key, left, right interface{}) interface{} {
		return combine(left, right)
	}, a, b)
}

// IntersectionWithKey keeps only the keys present in both a and b,
// combining values with combine(k, aVal, bVal) (spec §4.9). A recursion
// may produce an Empty subtrie (no shared leaf below a branch), so the
// result is reassembled through dropEmpty rather than buildNode.
func IntersectionWithKey(combine Combine, a, b Map) Map {
	root, size := intersectionNode(combine, a.root, b.root, 0)
	return newMap(root, size)
}

func intersectionNode(combine Combine, a, b node, depth int) (node, int) {
	if isEmptyNode(a) || isEmptyNode(b) {
		return theEmpty, 0
	}
	if leafA, ok := a.(*leafNode); ok {
		v, found := lookupNode(b, leafA.key, depth)
		if !found {
			return theEmpty, 0
		}
		return &leafNode{key: leafA.key, val: combine(leafA.key, leafA.val, v)}, 1
	}
	if leafB, ok := b.(*leafNode); ok {
		v, found := lookupNode(a, leafB.key, depth)
		if !found {
			return theEmpty, 0
		}
		return &leafNode{key: leafB.key, val: combine(leafB.key, v, leafB.val)}, 1
	}

	bmA, childrenA, okA := asInterior(a)
	bmB, childrenB, okB := asInterior(b)
	assertf(okA && okB, "intersectionNode: unknown node types %T, %T", a, b)

	intersectBM := bmA & bmB
	resultChildren := make([]node, 0, popcount64(intersectBM))
	total := 0
	for seg, remaining := uint8(0), intersectBM; remaining != 0; seg, remaining = seg+1, remaining>>1 {
		if remaining&1 == 0 {
			continue
		}
		childA := childrenA[indexFromSegment(bmA, seg)]
		childB := childrenB[indexFromSegment(bmB, seg)]
		child, cnt := intersectionNode(combine, childA, childB, depth+1)
		resultChildren = append(resultChildren, child)
		total += cnt
	}
	return dropEmpty(intersectBM, resultChildren), total
}

// CombineWhen is the value-merge function passed to IntersectionWhen: it
// may suppress a key from the result by returning ok=false.
type CombineWhen func(k Key, left, right interface{}) (interface{}, bool)

// IntersectionWhen is IntersectionWithKey generalized so combine may
// decide to drop a key entirely (spec §4.9).
func IntersectionWhen(combine CombineWhen, a, b Map) Map {
	root, size := intersectionWhenNode(combine, a.root, b.root, 0)
	return newMap(root, size)
}

func intersectionWhenNode(combine CombineWhen, a, b node, depth int) (node, int) {
	if isEmptyNode(a) || isEmptyNode(b) {
		return theEmpty, 0
	}
	if leafA, ok := a.(*leafNode); ok {
		v, found := lookupNode(b, leafA.key, depth)
		if !found {
			return theEmpty, 0
		}
		newVal, keep := combine(leafA.key, leafA.val, v)
		if !keep {
			return theEmpty, 0
		}
		return &leafNode{key: leafA.key, val: newVal}, 1
	}
	if leafB, ok := b.(*leafNode); ok {
		v, found := lookupNode(a, leafB.key, depth)
		if !found {
			return theEmpty, 0
		}
		newVal, keep := combine(leafB.key, v, leafB.val)
		if !keep {
			return theEmpty, 0
		}
		return &leafNode{key: leafB.key, val: newVal}, 1
	}

	bmA, childrenA, okA := asInterior(a)
	bmB, childrenB, okB := asInterior(b)
	assertf(okA && okB, "intersectionWhenNode: unknown node types %T, %T", a, b)

	intersectBM := bmA & bmB
	resultChildren := make([]node, 0, popcount64(intersectBM))
	total := 0
	for seg, remaining := uint8(0), intersectBM; remaining != 0; seg, remaining = seg+1, remaining>>1 {
		if remaining&1 == 0 {
			continue
		}
		childA := childrenA[indexFromSegment(bmA, seg)]
		childB := childrenB[indexFromSegment(bmB, seg)]
		child, cnt := intersectionWhenNode(combine, childA, childB, depth+1)
		resultChildren = append(resultChildren, child)
		total += cnt
	}
	return dropEmpty(intersectBM, resultChildren), total
}

// IntersectAccum folds over the intersection of two maps, seeing both
// sides' values for each shared key.
type IntersectAccum func(acc interface{}, k Key, left, right interface{}) interface{}

// FoldOverIntersection accumulates over the shared keys of a and b
// without ever materializing the intersection map, short-circuiting any
// branch whose bitmaps don't overlap (spec §4.9).
func FoldOverIntersection(accum IntersectAccum, seed interface{}, a, b Map) interface{} {
	return foldIntersectionNode(accum, seed, a.root, b.root, 0)
}

func foldIntersectionNode(accum IntersectAccum, acc interface{}, a, b node, depth int) interface{} {
	if isEmptyNode(a) || isEmptyNode(b) {
		return acc
	}
	if leafA, ok := a.(*leafNode); ok {
		if v, found := lookupNode(b, leafA.key, depth); found {
			return accum(acc, leafA.key, leafA.val, v)
		}
		return acc
	}
	if leafB, ok := b.(*leafNode); ok {
		if v, found := lookupNode(a, leafB.key, depth); found {
			return accum(acc, leafB.key, v, leafB.val)
		}
		return acc
	}

	bmA, childrenA, okA := asInterior(a)
	bmB, childrenB, okB := asInterior(b)
	assertf(okA && okB, "foldIntersectionNode: unknown node types %T, %T", a, b)

	intersectBM := bmA & bmB
	if intersectBM == 0 {
		return acc
	}
	for seg, remaining := uint8(0), intersectBM; remaining != 0; seg, remaining = seg+1, remaining>>1 {
		if remaining&1 == 0 {
			continue
		}
		childA := childrenA[indexFromSegment(bmA, seg)]
		childB := childrenB[indexFromSegment(bmB, seg)]
		acc = foldIntersectionNode(accum, acc, childA, childB, depth+1)
	}
	return acc
}

// RestrictKeys keeps only the entries of m whose key also appears in
// keys, discarding keys' values.
func RestrictKeys(m Map, keys Map) Map {
	return IntersectionWithKey(func(_ Key, mVal, _ interface{}) interface{} { return mVal }, m, keys)
}

// WithoutKeys removes from m every entry whose key appears in keys.
func WithoutKeys(m Map, keys Map) Map {
	result := FoldAsc(func(acc interface{}, k Key, _ interface{}) interface{} {
		return Delete(k, acc.(Map))
	}, m, keys)
	return result.(Map)
}
