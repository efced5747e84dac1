//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-reduce/internal/cpu"
	"github.com/cwbudde/algo-reduce/internal/vecmath/registry"
)

// init registers the AVX2-tier implementations with the vecmath registry.
//
// The kernels keep four independent accumulators per loop, the lane count
// of a 256-bit vector register.
//
// Priority: 20 (preferred over SSE2 when the CPU has AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		Sum:    Sum,
		MaxAbs: MaxAbs,
	})
}
