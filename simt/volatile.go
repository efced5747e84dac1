package simt

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// Volatile is a float64 buffer whose loads and stores always reach the
// backing cells. It models the memory qualifier that fence-free kernels
// apply to shared scratch: no value is cached in a register across rounds,
// and a store is immediately observable by every lane that loads the cell.
// Accesses never tear, so concurrent misuse yields stale or interleaved
// values rather than corrupted ones.
//
// The zero value is an empty buffer.
type Volatile struct {
	words []uint64
}

// NewVolatile returns a zeroed volatile buffer of n cells.
func NewVolatile(n int) Volatile {
	return Volatile{words: make([]uint64, n)}
}

// Len returns the number of cells.
func (v Volatile) Len() int { return len(v.words) }

// Load reads cell i through to the backing store.
func (v Volatile) Load(i int) float64 {
	return math.Float64frombits(atomic.LoadUint64(&v.words[i]))
}

// Store writes cell i; the write is immediately visible to all lanes.
func (v Volatile) Store(i int, x float64) {
	atomic.StoreUint64(&v.words[i], math.Float64bits(x))
}

// Float64s returns the cells as an ordinary float64 slice aliasing the same
// memory. The plain view is for phases whose ordering is established by
// barriers rather than by volatile access, and for host-side reads after a
// dispatch has completed; mixing plain and volatile access concurrently
// forfeits the no-caching guarantee.
func (v Volatile) Float64s() []float64 {
	if len(v.words) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(v.words))), len(v.words))
}
