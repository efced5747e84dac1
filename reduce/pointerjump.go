package reduce

import (
	"math/bits"

	"github.com/cwbudde/algo-reduce/simt"
)

// pointerJumpKernel reduces each group's span of in to out[groupID] by
// pointer jumping: every lane chains to a successor, and each fenced round
// folds the successor's partial sum into the lane's own and jumps the chain
// one link further. Scratch holds the partial sums in its lower half and
// the successor indices, stored as exact small float64s, in its upper half.
func pointerJumpKernel(in, out []float64) simt.Kernel {
	n := len(in)
	return func(g *simt.Group, lane int) {
		size := g.Size()
		local := g.Local()
		sums := local[:size]
		next := local[size:]

		global := g.GlobalID(lane)
		switch {
		case global < n-1:
			sums[lane] = in[global]
			next[lane] = float64(lane + 1)
		case global == n-1:
			sums[lane] = in[global]
			next[lane] = float64(size)
		default:
			// Beyond the input: terminate the chain so no lane reads the
			// uninitialized sum cell.
			next[lane] = float64(size)
		}
		g.Barrier()

		// Chain links double every round, so ceil(log2(size)) rounds consume
		// any chain. A fixed bound keeps all lanes on the same barrier
		// schedule without reading another lane's chain head.
		rounds := bits.Len(uint(size - 1))
		activity := lane
		for r := 0; r < rounds; r++ {
			if succ := int(next[lane]); activity&1 == 0 && succ < size {
				sums[lane] += sums[succ]
				next[lane] = next[succ]
				activity >>= 1
			}
			g.Barrier()
		}

		if lane == 0 {
			out[g.ID()] = sums[0]
		}
	}
}

// PointerJumpPass reduces in to one partial sum per group with the
// pointer-jumping kernel, writing the sums to out[:groups]. It returns the
// group count. Any power-of-two group size up to the device maximum is
// valid. A nil device selects the process-wide default.
//
// Pointer jumping runs the same number of rounds as the halving kernels
// but moves more scratch traffic per round; it exists for comparison, not
// for speed.
func PointerJumpPass(d *simt.Device, in, out []float64, groupSize int) (int, error) {
	if d == nil {
		d = simt.Default()
	}
	groups, err := validatePass(d, in, out, groupSize, 0)
	if err != nil {
		return 0, err
	}

	// Lower half partial sums, upper half successor indices.
	d.Dispatch(groups, groupSize, 2*groupSize, pointerJumpKernel(in, out))

	return groups, nil
}
