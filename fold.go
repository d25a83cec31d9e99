package persist256

// Entry is a single key/value pair, used by ToList/FromList.
type Entry struct {
	Key Key
	Val interface{}
}

// FoldAsc folds f over every entry of m in ascending key order (spec
// §4.13): segment order within a node is ascending by bit index, and
// ascending segment order is key order, so a plain leftmost-first walk of
// every node's children visits keys in ascending order.
func FoldAsc(f func(acc interface{}, k Key, v interface{}) interface{}, seed interface{}, m Map) interface{} {
	return foldAscNode(f, seed, m.root)
}

func foldAscNode(f func(acc interface{}, k Key, v interface{}) interface{}, acc interface{}, n node) interface{} {
	switch t := n.(type) {
	case *emptyNode:
		return acc
	case *leafNode:
		return f(acc, t.key, t.val)
	default:
		_, children, ok := asInterior(n)
		assertf(ok, "foldAscNode: unknown node type %T", n)
		for _, c := range children {
			acc = foldAscNode(f, acc, c)
		}
		return acc
	}
}

// FoldDesc is the mirror of FoldAsc, visiting keys in descending order.
func FoldDesc(f func(acc interface{}, k Key, v interface{}) interface{}, seed interface{}, m Map) interface{} {
	return foldDescNode(f, seed, m.root)
}

func foldDescNode(f func(acc interface{}, k Key, v interface{}) interface{}, acc interface{}, n node) interface{} {
	switch t := n.(type) {
	case *emptyNode:
		return acc
	case *leafNode:
		return f(acc, t.key, t.val)
	default:
		_, children, ok := asInterior(n)
		assertf(ok, "foldDescNode: unknown node type %T", n)
		for i := len(children) - 1; i >= 0; i-- {
			acc = foldDescNode(f, acc, children[i])
		}
		return acc
	}
}

// TraverseWithKey visits every entry of m in ascending key order, calling
// effect for its side effects only; it preserves the trie's shape (it
// never rebuilds anything).
func TraverseWithKey(effect func(k Key, v interface{}), m Map) {
	traverseNode(effect, m.root)
}

func traverseNode(effect func(Key, interface{}), n node) {
	switch t := n.(type) {
	case *emptyNode:
		return
	case *leafNode:
		effect(t.key, t.val)
	default:
		_, children, ok := asInterior(n)
		assertf(ok, "traverseNode: unknown node type %T", n)
		for _, c := range children {
			traverseNode(effect, c)
		}
	}
}

// MapWithKey returns a new map with every value replaced by
// f(key, value); keys and shape are unchanged, so a branch whose values
// are all pointer-identical to f's output is returned unchanged too.
func MapWithKey(f func(k Key, v interface{}) interface{}, m Map) Map {
	return newMap(mapWithKeyNode(f, m.root), m.size)
}

func mapWithKeyNode(f func(Key, interface{}) interface{}, n node) node {
	switch t := n.(type) {
	case *emptyNode:
		return n
	case *leafNode:
		newVal := f(t.key, t.val)
		if newVal == t.val {
			return t
		}
		return &leafNode{key: t.key, val: newVal}
	case *oneNode:
		child := mapWithKeyNode(f, t.child)
		if child == t.child {
			return t
		}
		return &oneNode{seg: t.seg, child: child}
	default:
		bitmap, children, ok := asInterior(n)
		assertf(ok, "mapWithKeyNode: unknown node type %T", n)
		newChildren := make([]node, len(children))
		changed := false
		for i, c := range children {
			nc := mapWithKeyNode(f, c)
			newChildren[i] = nc
			if nc != c {
				changed = true
			}
		}
		if !changed {
			return n
		}
		return buildNode(bitmap, newChildren)
	}
}

// ToList returns every entry of m as a slice sorted ascending by key.
func ToList(m Map) []Entry {
	out := make([]Entry, 0, m.size)
	TraverseWithKey(func(k Key, v interface{}) {
		out = append(out, Entry{Key: k, Val: v})
	}, m)
	return out
}

// FromList builds a map from a slice of entries; duplicate keys resolve
// last-write-wins, matching sequential Insert (spec §8 law 4).
func FromList(kvs []Entry) Map {
	m := Empty()
	for _, kv := range kvs {
		m = Insert(kv.Key, kv.Val, m)
	}
	return m
}
