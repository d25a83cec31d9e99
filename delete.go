package persist256

// Delete removes k from m. If k is absent, m is returned unchanged
// (sharing, spec §4.7).
func Delete(k Key, m Map) Map {
	newRoot, deleted := deleteNode(m.root, k, 0)
	if !deleted {
		return m
	}
	return newMap(newRoot, m.size-1)
}

// deleteNode descends by path; at a matching Leaf it returns Empty, and
// every interior level on the way back up either removes the now-empty
// slot (clearing the bit and shrinking the array) or updates it in place,
// per the continuation described in spec §4.7 and §9.
func deleteNode(n node, k Key, depth int) (node, bool) {
	switch t := n.(type) {
	case *emptyNode:
		return n, false
	case *leafNode:
		if t.key.Equal(k) {
			return theEmpty, true
		}
		return n, false
	default:
		bitmap, children, ok := asInterior(n)
		assertf(ok, "deleteNode: unknown node type %T", n)
		seg := segmentAt(k, depth)
		if !testBit(bitmap, seg) {
			return n, false
		}
		idx := indexFromSegment(bitmap, seg)
		child, deleted := deleteNode(children[idx], k, depth+1)
		if !deleted {
			return n, false
		}
		if isEmptyNode(child) {
			newBitmap := bitmap &^ (uint64(1) << seg)
			return buildNode(newBitmap, removeAt(children, idx)), true
		}
		return buildNode(bitmap, updateAt(children, idx, child)), true
	}
}
