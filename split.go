package persist256

// SplitLookup returns (less, value, found, greater) such that less holds
// every entry of m with a key < k, greater holds every entry with a key >
// k, and value/found is the entry for k itself if present (spec §4.11).
func SplitLookup(k Key, m Map) (less Map, value interface{}, found bool, greater Map) {
	lessNode, value, found, greaterNode := splitNode(m.root, k, 0)
	return newMap(lessNode, nodeSize(lessNode)), value, found, newMap(greaterNode, nodeSize(greaterNode))
}

// splitNode implements the descent described in spec §4.11 via two
// continuations threaded as ordinary return values: the caller splices
// the recursive less/greater results back into the surrounding slice with
// lowSlice/highSlice as the recursion unwinds, then reassembles through
// dropEmpty (the recursive child may turn out Empty on either side).
func splitNode(n node, k Key, depth int) (lessN node, value interface{}, found bool, greaterN node) {
	switch t := n.(type) {
	case *emptyNode:
		return theEmpty, nil, false, theEmpty
	case *leafNode:
		switch t.key.Compare(k) {
		case 0:
			return theEmpty, t.val, true, theEmpty
		case -1:
			return t, nil, false, theEmpty
		default:
			return theEmpty, nil, false, t
		}
	default:
		bitmap, children, ok := asInterior(n)
		assertf(ok, "splitNode: unknown node type %T", n)

		seg := segmentAt(k, depth)
		lowBM, present, highBM := splitBitmap(bitmap, seg)
		lowCount := popcount64(lowBM)

		if !present {
			lessChildren := sliceRange(0, lowCount-1, children)
			greaterChildren := sliceRange(lowCount, len(children)-1, children)
			return buildNode(lowBM, lessChildren), nil, false, buildNode(highBM, greaterChildren)
		}

		idx := lowCount
		lessChild, value, found, greaterChild := splitNode(children[idx], k, depth+1)

		lessChildren := lowSlice(idx, children, lessChild)
		greaterChildren := highSlice(idx, children, greaterChild)

		lessBM := lowBM | uint64(1)<<seg
		greaterBM := highBM | uint64(1)<<seg

		return dropEmpty(lessBM, lessChildren), value, found, dropEmpty(greaterBM, greaterChildren)
	}
}
