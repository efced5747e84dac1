//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-reduce/internal/cpu"
	"github.com/cwbudde/algo-reduce/internal/vecmath/registry"
)

// init registers the NEON-tier implementations with the vecmath registry.
//
// NEON (ARM Advanced SIMD) is mandatory on ARMv8, so this entry is always
// available on arm64. The kernels keep two independent accumulators per
// loop, the lane count of a 128-bit NEON register.
//
// Priority: 15 (ARM's counterpart to the x86 vector tiers)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Sum:    Sum,
		MaxAbs: MaxAbs,
	})
}
