//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-reduce/internal/cpu"
	"github.com/cwbudde/algo-reduce/internal/vecmath/registry"
)

// init registers the SSE2-tier implementations with the vecmath registry.
//
// SSE2 is baseline on amd64, so this entry is always available there. The
// kernels keep two independent accumulators per loop, the lane count of a
// 128-bit vector register.
//
// Priority: 10 (above generic, below the wider tiers)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Sum:    Sum,
		MaxAbs: MaxAbs,
	})
}
