package persist256

// Valid reports whether m's trie satisfies the structural invariants from
// spec §3: no node other than the root itself holds an Empty child, the
// bitmap-size invariant (popcount(bitmap) == len(children)) holds for
// Two/Sparse/Full, array lengths fall in the ranges their variant
// implies, and no One node wraps a Leaf directly (that case must have
// collapsed to the Leaf itself in buildNode).
func Valid(m Map) bool {
	return validNode(m.root, true)
}

func validNode(n node, isRoot bool) bool {
	switch t := n.(type) {
	case *emptyNode:
		return isRoot
	case *leafNode:
		return true
	case *oneNode:
		if isEmptyNode(t.child) {
			return false
		}
		if _, isLeaf := t.child.(*leafNode); isLeaf {
			return false
		}
		return validNode(t.child, false)
	case *twoNode:
		if popcount64(t.bitmap) != 2 {
			return false
		}
		return validChildren(t.children[:], false)
	case *sparseNode:
		if popcount64(t.bitmap) != len(t.children) {
			return false
		}
		if len(t.children) < 3 || len(t.children) > 63 {
			return false
		}
		return validChildren(t.children, false)
	case *fullNode:
		return validChildren(t.children[:], false)
	default:
		return false
	}
}

func validChildren(children []node, isRoot bool) bool {
	for _, c := range children {
		if isEmptyNode(c) {
			return false
		}
		if !validNode(c, isRoot) {
			return false
		}
	}
	return true
}

// Histogram counts, for every interior node in m, how many populated
// child slots it has (1..64), for structural analysis (spec §6
// "Diagnostics"). Index i holds the number of interior nodes with exactly
// i populated slots; leaves and the empty sentinel aren't counted.
func Histogram(m Map) [65]int {
	var hist [65]int
	histogramNode(m.root, &hist)
	return hist
}

func histogramNode(n node, hist *[65]int) {
	_, children, ok := asInterior(n)
	if !ok {
		return
	}
	hist[len(children)]++
	for _, c := range children {
		histogramNode(c, hist)
	}
}
