package persist256

// Lookup returns the value stored for k, if any (spec §4.5).
func Lookup(k Key, m Map) (interface{}, bool) {
	return lookupNode(m.root, k, 0)
}

func lookupNode(n node, k Key, depth int) (interface{}, bool) {
	switch t := n.(type) {
	case *emptyNode:
		return nil, false
	case *leafNode:
		if t.key.Equal(k) {
			return t.val, true
		}
		return nil, false
	case *oneNode:
		if depth >= PathLen {
			return nil, false
		}
		if segmentAt(k, depth) != t.seg {
			return nil, false
		}
		return lookupNode(t.child, k, depth+1)
	case *twoNode:
		if depth >= PathLen {
			return nil, false
		}
		seg := segmentAt(k, depth)
		if !testBit(t.bitmap, seg) {
			return nil, false
		}
		return lookupNode(t.children[indexFromSegment(t.bitmap, seg)], k, depth+1)
	case *sparseNode:
		if depth >= PathLen {
			return nil, false
		}
		seg := segmentAt(k, depth)
		if !testBit(t.bitmap, seg) {
			return nil, false
		}
		return lookupNode(t.children[indexFromSegment(t.bitmap, seg)], k, depth+1)
	case *fullNode:
		if depth >= PathLen {
			return nil, false
		}
		seg := segmentAt(k, depth)
		return lookupNode(t.children[seg], k, depth+1)
	default:
		failf("lookupNode: unknown node type %T", n)
		return nil, false
	}
}

// LookupMin returns the entry with the smallest key in the map, if any.
func LookupMin(m Map) (Key, interface{}, bool) {
	return minEntry(m.root)
}

// LookupMax returns the entry with the largest key in the map, if any.
func LookupMax(m Map) (Key, interface{}, bool) {
	return maxEntry(m.root)
}
