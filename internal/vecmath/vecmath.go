// Package vecmath provides CPU-dispatched reduction reference
// implementations for the host side: the baseline the device kernels are
// benchmarked against, the verification sum the CLI prints, and the input
// magnitude that test tolerances scale with.
//
// Implementation variants register themselves with the registry package for
// a SIMD level; every call selects the best variant for the current CPU.
// Forcing features via the cpu package therefore redirects the very next
// call, which the dispatch tests rely on.
package vecmath

import (
	"github.com/cwbudde/algo-reduce/internal/cpu"
	"github.com/cwbudde/algo-reduce/internal/vecmath/registry"
)

func lookup() *registry.OpEntry {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no implementation registered")
	}
	return entry
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	entry := lookup()
	if entry.Sum == nil {
		panic("vecmath: selected implementation missing sum operation")
	}
	return entry.Sum(x)
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice.
func MaxAbs(x []float64) float64 {
	entry := lookup()
	if entry.MaxAbs == nil {
		panic("vecmath: selected implementation missing maxabs operation")
	}
	return entry.MaxAbs(x)
}

// Implementation returns the name of the variant serving the current CPU
// (e.g. "avx2", "neon", "generic").
func Implementation() string {
	return lookup().Name
}
