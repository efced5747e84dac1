package reduce

import (
	"errors"

	"github.com/cwbudde/algo-reduce/simt"
)

var (
	// ErrEmptyInput reports a reduction over no elements.
	ErrEmptyInput = errors.New("reduce: empty input")

	// ErrInvalidGroupSize reports a group size that is not a positive power
	// of two.
	ErrInvalidGroupSize = errors.New("reduce: group size must be a positive power of two")

	// ErrGroupTooLarge reports a group size beyond the device's maximum.
	ErrGroupTooLarge = errors.New("reduce: group size exceeds device maximum")

	// ErrGroupExceedsWidth reports a fence-free launch wider than one
	// lockstep unit.
	ErrGroupExceedsWidth = errors.New("reduce: group size exceeds lockstep width")

	// ErrShortOutput reports an output buffer with fewer cells than the
	// launch has groups.
	ErrShortOutput = errors.New("reduce: output shorter than group count")
)

// groupCount returns the number of groups a pass launches over n elements.
func groupCount(n, groupSize int) int {
	return (n + groupSize - 1) / groupSize
}

// validatePass checks a pass launch against the device. A widthCap above
// zero additionally bounds the group size by the lockstep width.
func validatePass(d *simt.Device, in, out []float64, groupSize, widthCap int) (int, error) {
	if len(in) == 0 {
		return 0, ErrEmptyInput
	}
	if groupSize < 1 || groupSize&(groupSize-1) != 0 {
		return 0, ErrInvalidGroupSize
	}
	if groupSize > d.MaxGroupSize() {
		return 0, ErrGroupTooLarge
	}
	if widthCap > 0 && groupSize > widthCap {
		return 0, ErrGroupExceedsWidth
	}
	groups := groupCount(len(in), groupSize)
	if len(out) < groups {
		return 0, ErrShortOutput
	}
	return groups, nil
}

// BarrierPass reduces in to one partial sum per group with the fenced
// kernel, writing the sums to out[:groups]. It returns the group count.
// Any power-of-two group size up to the device maximum is valid. A nil
// device selects the process-wide default.
func BarrierPass(d *simt.Device, in, out []float64, groupSize int) (int, error) {
	if d == nil {
		d = simt.Default()
	}
	groups, err := validatePass(d, in, out, groupSize, 0)
	if err != nil {
		return 0, err
	}

	d.Dispatch(groups, groupSize, groupSize, barrierKernel(in, out))

	return groups, nil
}

// SimdPass reduces in to one partial sum per group with the fence-free
// kernel, writing the sums to out[:groups]. It returns the group count.
// The group size must not exceed the device's lockstep width; a wider
// group would leave the halving rounds unordered.
func SimdPass(d *simt.Device, in, out []float64, groupSize int) (int, error) {
	if d == nil {
		d = simt.Default()
	}
	groups, err := validatePass(d, in, out, groupSize, d.Width())
	if err != nil {
		return 0, err
	}

	// Fence-free rounds read up to one stride past the group's span when
	// the bounds guard passes; pad the scratch so those loads stay in
	// bounds. The padding cells never reach cell 0.
	d.DispatchLockstep(groups, groupSize, 2*groupSize, simdKernel(in, out))

	return groups, nil
}

// HybridPass reduces in to one partial sum per group with the two-phase
// kernel: fenced rounds down to one lockstep unit, fence-free rounds the
// rest of the way. It writes the sums to out[:groups] and returns the
// group count. Any power-of-two group size up to the device maximum is
// valid.
func HybridPass(d *simt.Device, in, out []float64, groupSize int) (int, error) {
	if d == nil {
		d = simt.Default()
	}
	groups, err := validatePass(d, in, out, groupSize, 0)
	if err != nil {
		return 0, err
	}

	// The fence-free phase reads past the group's span like SimdPass does.
	d.Dispatch(groups, groupSize, 2*groupSize, hybridKernel(in, out))

	return groups, nil
}

// SimdWidth probes the lockstep width the way kernels observe it: a probe
// kernel launched at the device's maximum group size reports the width of
// its first unit. The result is a power of two no larger than the launch
// group size. A nil device selects the process-wide default.
func SimdWidth(d *simt.Device) int {
	if d == nil {
		d = simt.Default()
	}

	out := make([]int, 1)
	d.Dispatch(1, d.MaxGroupSize(), 0, widthKernel(out))

	return out[0]
}
