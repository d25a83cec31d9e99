package persist256

// Sparse array operations (spec §4.2). Every operation returns a freshly
// allocated array; the input is never mutated, so callers may keep using
// it after the call (structural sharing across map versions depends on
// this).

// insertAt returns a new array with x inserted at index i; indices below
// i are unchanged, indices at or above i are shifted right by one.
func insertAt(arr []node, i int, x node) []node {
	assertf(i >= 0 && i <= len(arr), "insertAt: index %d out of range [0,%d]", i, len(arr))

	out := make([]node, len(arr)+1)
	copy(out[:i], arr[:i])
	out[i] = x
	copy(out[i+1:], arr[i:])
	return out
}

// removeAt returns a new array with the element at index i removed.
func removeAt(arr []node, i int) []node {
	assertf(i >= 0 && i < len(arr), "removeAt: index %d out of range [0,%d)", i, len(arr))

	out := make([]node, len(arr)-1)
	copy(out[:i], arr[:i])
	copy(out[i:], arr[i+1:])
	return out
}

// updateAt returns a new array, the same length as arr, with the element
// at index i replaced by x.
func updateAt(arr []node, i int, x node) []node {
	assertf(i >= 0 && i < len(arr), "updateAt: index %d out of range [0,%d)", i, len(arr))

	out := make([]node, len(arr))
	copy(out, arr)
	out[i] = x
	return out
}

// sliceRange returns the inclusive range arr[lo..hi]. It returns an empty
// array when hi < lo. When the range spans the whole array it returns arr
// itself, sharing the backing array with the caller (both are read-only
// from here on, so this is safe).
func sliceRange(lo, hi int, arr []node) []node {
	if hi < lo {
		return nil
	}
	if lo == 0 && hi == len(arr)-1 {
		return arr
	}
	out := make([]node, hi-lo+1)
	copy(out, arr[lo:hi+1])
	return out
}

// lowSlice copies indices [0..p-1] of arr and appends x at index p,
// producing an array of length p+1. p is clamped to [0, len(arr)].
func lowSlice(p int, arr []node, x node) []node {
	if p < 0 {
		p = 0
	}
	if p > len(arr) {
		p = len(arr)
	}
	out := make([]node, p+1)
	copy(out, arr[:p])
	out[p] = x
	return out
}

// highSlice writes x at index 0 and copies indices [p+1..len(arr)-1] of
// arr after it, producing an array of length len(arr)-p (or the
// one-element [x] when p == len(arr)). p is clamped to [0, len(arr)].
func highSlice(p int, arr []node, x node) []node {
	if p < 0 {
		p = 0
	}
	if p > len(arr) {
		p = len(arr)
	}
	if p == len(arr) {
		return []node{x}
	}
	out := make([]node, len(arr)-p)
	out[0] = x
	copy(out[1:], arr[p+1:])
	return out
}
