package persist256

import "math/bits"

// node is the closed sum of trie shapes described in spec §3: emptyNode,
// leafNode, oneNode, twoNode, sparseNode, fullNode. It is implemented as
// an interface over pointer types so that "same node" (the leaf-sharing
// and no-op-recursion invariants of §4.6/§5) is exactly Go pointer
// equality, not a deep value comparison.
type node interface {
	isNode()
}

// emptyNode represents the empty map. It is a singleton: every Empty
// value in the trie is the same pointer, so comparing against theEmpty
// with == is a valid emptiness test.
type emptyNode struct{}

func (*emptyNode) isNode() {}

var theEmpty = &emptyNode{}

func isEmptyNode(n node) bool {
	_, ok := n.(*emptyNode)
	return ok
}

// leafNode is a terminal key/value entry.
type leafNode struct {
	key Key
	val interface{}
}

func (*leafNode) isNode() {}

// oneNode has exactly one populated slot, so the bitmap can be replaced
// by a single stored segment (spec §3 "One").
type oneNode struct {
	seg   uint8
	child node
}

func (*oneNode) isNode() {}

// twoNode has exactly two populated slots, in segment-ascending order.
type twoNode struct {
	bitmap   uint64
	children [2]node
}

func (*twoNode) isNode() {}

// sparseNode has 3..63 populated slots.
type sparseNode struct {
	bitmap   uint64
	children []node
}

func (*sparseNode) isNode() {}

// fullNode has all 64 slots populated; the bitmap is implicitly fullMask
// and is not stored (spec §3, §4.1 "full_mask").
type fullNode struct {
	children [64]node
}

func (*fullNode) isNode() {}

// asInterior gives the shared (bitmap, children) view of any non-leaf,
// non-empty node, per the dispatcher described in spec §9. Algorithms
// that treat One/Two/Sparse/Full uniformly (union, intersection, split,
// fold) go through this instead of repeating a four-way type switch.
func asInterior(n node) (bitmap uint64, children []node, ok bool) {
	switch t := n.(type) {
	case *oneNode:
		return uint64(1) << t.seg, []node{t.child}, true
	case *twoNode:
		return t.bitmap, t.children[:], true
	case *sparseNode:
		return t.bitmap, t.children, true
	case *fullNode:
		return fullMask, t.children[:], true
	default:
		return 0, nil, false
	}
}

// buildNode is the primary smart constructor (spec §4.3): given a bitmap
// and its dense child array (length == popcount(bitmap)), it returns the
// minimal node variant. It is the only place besides dropEmpty that
// constructs a Two/Sparse/Full node. One nodes are also built directly by
// insert (its divergence chain and child replacement) and by MapWithKey.
func buildNode(bitmap uint64, children []node) node {
	assertf(popcount64(bitmap) == len(children),
		"buildNode: popcount(bitmap)=%d != len(children)=%d", popcount64(bitmap), len(children))

	switch len(children) {
	case 0:
		return theEmpty
	case 1:
		if leaf, ok := children[0].(*leafNode); ok {
			return leaf
		}
		return &oneNode{seg: uint8(bits.TrailingZeros64(bitmap)), child: children[0]}
	case 2:
		return &twoNode{bitmap: bitmap, children: [2]node{children[0], children[1]}}
	}
	if bitmap == fullMask {
		assertf(len(children) == 64, "buildNode: full bitmap with %d children", len(children))
		var ft fullNode
		copy(ft.children[:], children)
		return &ft
	}
	return &sparseNode{bitmap: bitmap, children: children}
}

// dropEmpty is the delete/intersection-side smart constructor (spec
// §4.3): it filters any Empty children out of the array, clearing their
// bitmap bits first, then delegates to buildNode. This is how the
// no-empty-child invariant is restored after an operation (delete,
// intersection) produces an Empty subtrie.
func dropEmpty(bitmap uint64, children []node) node {
	empties := 0
	for _, c := range children {
		if isEmptyNode(c) {
			empties++
		}
	}
	if empties == 0 {
		return buildNode(bitmap, children)
	}

	newBitmap := bitmap
	newChildren := make([]node, 0, len(children)-empties)
	for seg, remaining := uint8(0), bitmap; remaining != 0; seg, remaining = seg+1, remaining>>1 {
		if remaining&1 == 0 {
			continue
		}
		idx := indexFromSegment(bitmap, seg)
		c := children[idx]
		if isEmptyNode(c) {
			newBitmap &^= uint64(1) << seg
		} else {
			newChildren = append(newChildren, c)
		}
	}
	return buildNode(newBitmap, newChildren)
}
