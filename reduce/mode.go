package reduce

import "errors"

// ErrUnknownMode reports a Mode value outside the defined set.
var ErrUnknownMode = errors.New("reduce: unknown mode")

// Mode selects the synchronization discipline a reduction runs under.
type Mode int

const (
	// ModeHybrid runs fenced rounds until the active lanes fit one
	// lockstep unit, then fence-free rounds. The default.
	ModeHybrid Mode = iota

	// ModeBarrier separates every halving round with a group barrier.
	ModeBarrier

	// ModeSimd runs entirely fence-free on groups no wider than one
	// lockstep unit.
	ModeSimd

	// ModePointerJump reduces along successor chains instead of halving
	// strides, under the fenced discipline.
	ModePointerJump
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeHybrid:
		return "Hybrid"
	case ModeBarrier:
		return "Barrier"
	case ModeSimd:
		return "SIMD"
	case ModePointerJump:
		return "PointerJump"
	default:
		return "Unknown"
	}
}
