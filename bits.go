package persist256

import "github.com/hideo55/go-popcount"

// fullMask is the 64-bit word with every slot bit set, the implicit bitmap
// of a fullNode (spec §3, §4.1 "full_mask").
const fullMask uint64 = ^uint64(0)

// lessMask[i] has bits 0..i-1 set; greaterMask[i] has bits i+1..63 set.
// Both are precomputed so splitBitmap never recomputes a shift/mask pair
// per call, per spec §4.1.
var lessMask [64]uint64
var greaterMask [64]uint64

func init() {
	for i := 0; i < 64; i++ {
		if i == 0 {
			lessMask[i] = 0
		} else {
			lessMask[i] = uint64(1)<<uint(i) - 1
		}
		greaterMask[i] = ^uint64(0) << uint(i+1)
	}
}

// popcount64 returns the number of set bits in bm.
func popcount64(bm uint64) int {
	return int(popcount.Count(bm))
}

// sparseIndex returns the dense array index of the single populated slot
// identified by mask (a power of two) within a node whose populated slots
// are recorded by bitmap.
func sparseIndex(bitmap, mask uint64) int {
	return popcount64(bitmap & (mask - 1))
}

// indexFromSegment is sparseIndex specialized to a raw 0..63 segment value.
func indexFromSegment(bitmap uint64, seg uint8) int {
	return sparseIndex(bitmap, uint64(1)<<seg)
}

// testBit reports whether segment seg is populated in bitmap.
func testBit(bitmap uint64, seg uint8) bool {
	return bitmap&(uint64(1)<<seg) != 0
}

// splitBitmap splits bitmap around segment i, returning the bits below i,
// whether i itself is set, and the bits above i.
func splitBitmap(bitmap uint64, i uint8) (less uint64, present bool, greater uint64) {
	less = bitmap & lessMask[i]
	present = testBit(bitmap, i)
	greater = bitmap & greaterMask[i]
	return
}
