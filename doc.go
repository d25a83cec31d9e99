/*
Package persist256 implements a compact persistent ordered map whose keys
are fixed-width 256-bit values and whose payload is an arbitrary value
type. The structure is a Hash-Array-Mapped-Trie variant indexed by the raw
bits of the key rather than a hash of it, so lookups, insertions,
deletions, and ordered traversals are logarithmic in the number of stored
entries, and ordered operations (min, max, range split, ascending/
descending fold, leapfrog intersection) are supported because the trie's
radix order coincides with key order.

A Key is split into 44 six-bit path segments, eleven per 64-bit lane, most
significant lane and segment first. Descending the trie consumes one
segment per level. Every interior node is one of four shapes, chosen by
the smart constructors in node.go to hold only as many child slots as are
actually populated:

	One    - exactly one populated slot, segment stored inline
	Two    - exactly two populated slots
	Sparse - 3..63 populated slots, bitmap-indexed
	Full   - all 64 slots populated

A Map value is immutable once constructed; every operation that would
logically mutate it returns a new Map, sharing as much of the trie as
possible with its inputs. There is no locking and nothing to cancel:
operations only ever read existing nodes and build new ones.
*/
package persist256
