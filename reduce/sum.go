package reduce

import (
	"errors"
	"math/bits"

	"github.com/cwbudde/algo-reduce/simt"
)

// ErrGroupTooSmall reports a group size that cannot shrink the data: a
// one-lane group emits as many partial sums as it consumes elements.
var ErrGroupTooSmall = errors.New("reduce: group size must be at least two lanes")

// partials stages pass results between passes, shared across Sum calls.
var partials = simt.NewPool()

// Sum reduces in to a single value on a simulated device. Each pass chops
// the remaining values into thread-groups, reduces every group to one
// partial sum in parallel, and feeds the partial sums to the next pass
// until one value remains. A single-element input returns that element
// without dispatching; the empty input is an error.
//
// Group sizes are derived per pass: the mode's device cap (the maximum
// group size, or the lockstep width for ModeSimd), clamped to the element
// count, and rounded up to the next power of two when a single group covers
// the remainder so the halving rounds reach every cell.
func Sum(in []float64, opts ...SumOption) (float64, error) {
	cfg := ApplySumOptions(opts...)

	d := cfg.Device
	if d == nil {
		d = simt.Default()
	}

	if len(in) == 0 {
		return 0, ErrEmptyInput
	}

	limit, err := modeCap(d, cfg.Mode)
	if err != nil {
		return 0, err
	}
	if limit < 2 && len(in) > 1 {
		return 0, ErrGroupTooSmall
	}
	if cfg.GroupSize > 0 {
		if cfg.GroupSize < 2 {
			return 0, ErrGroupTooSmall
		}
		if cfg.GroupSize&(cfg.GroupSize-1) != 0 {
			return 0, ErrInvalidGroupSize
		}
	}

	var spare *simt.Buffer
	var staged *simt.Buffer
	defer func() {
		partials.Put(spare)
		partials.Put(staged)
	}()

	current := in
	for len(current) > 1 {
		size := cfg.GroupSize
		if size == 0 {
			size = passGroupSize(len(current), limit)
		}
		groups := groupCount(len(current), size)

		if spare == nil {
			spare = partials.Get(groups)
		} else {
			spare.Resize(groups)
		}
		out := spare.Cells()

		if _, err := runPass(d, cfg.Mode, current, out, size); err != nil {
			return 0, err
		}

		current = out
		spare, staged = staged, spare
	}

	return current[0], nil
}

// runPass launches one reduction pass under the given mode.
func runPass(d *simt.Device, m Mode, in, out []float64, groupSize int) (int, error) {
	switch m {
	case ModeHybrid:
		return HybridPass(d, in, out, groupSize)
	case ModeBarrier:
		return BarrierPass(d, in, out, groupSize)
	case ModeSimd:
		return SimdPass(d, in, out, groupSize)
	case ModePointerJump:
		return PointerJumpPass(d, in, out, groupSize)
	default:
		return 0, ErrUnknownMode
	}
}

// modeCap returns the largest group size the mode permits on the device.
func modeCap(d *simt.Device, m Mode) (int, error) {
	switch m {
	case ModeHybrid, ModeBarrier, ModePointerJump:
		return d.MaxGroupSize(), nil
	case ModeSimd:
		return d.Width(), nil
	default:
		return 0, ErrUnknownMode
	}
}

// passGroupSize derives the launch group size for n remaining elements:
// the mode's cap clamped to n, rounded up to the next power of two when a
// single group covers the remainder.
func passGroupSize(n, limit int) int {
	size := limit
	if size > n {
		size = n
	}
	if groupCount(n, size) == 1 {
		size = nextPow2(size)
	}
	return size
}

// nextPow2 returns the smallest power of two that is at least n.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
