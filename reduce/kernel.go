package reduce

import "github.com/cwbudde/algo-reduce/simt"

// halveRounds drives the tree-halving schedule shared by every reduction
// variant: run combine at the current active-lane count, synchronize, halve,
// until the count reaches stop. It returns the count it stopped at, which is
// the entry point for a follow-on loop under another discipline.
func halveRounds(start, stop int, combine func(active int), sync func()) int {
	active := start
	for active > stop {
		combine(active)
		sync()
		active >>= 1
	}
	return active
}

// lockstepSync is the between-rounds synchronization of the fence-free
// discipline: nothing. Ordering comes from the unit's single instruction
// stream, not from a fence.
func lockstepSync() {}

// accumulateVolatile folds the source cell into the target cell through the
// volatile view, so both accesses reach the backing store immediately.
func accumulateVolatile(scratch simt.Volatile, source, target int) {
	scratch.Store(target, scratch.Load(target)+scratch.Load(source))
}

// barrierKernel reduces each group's span of in to out[groupID] under the
// fenced discipline. Safe at any group size the device accepts.
func barrierKernel(in, out []float64) simt.Kernel {
	n := len(in)
	return func(g *simt.Group, lane int) {
		local := g.Local()
		global := g.GlobalID(lane)

		if global < n {
			local[lane] = in[global]
		}
		g.Barrier()

		halveRounds(g.Size()>>1, 0, func(active int) {
			if lane < active && global+active < n {
				local[lane] += local[lane+active]
			}
		}, g.Barrier)

		if lane == 0 {
			out[g.ID()] = local[0]
		}
	}
}

// simdKernel reduces each group's span of in to out[groupID] fence-free.
// The group must not be wider than one lockstep unit: the unit's stepwise
// schedule is the only ordering between rounds, and scratch goes through
// the volatile view so no round caches a stale cell.
//
// Lanes above the shrinking active count keep combining whenever their
// bounds guard passes; their writes land in cells no later round reads.
// Every lane writes the group result, as every lane holds the same cell 0.
func simdKernel(in, out []float64) simt.StepKernel {
	n := len(in)
	return func(g *simt.Group, u *simt.Unit) {
		scratch := g.LocalVolatile()

		u.Step(func(lane int) {
			if global := g.GlobalID(lane); global < n {
				scratch.Store(lane, in[global])
			}
		})

		halveRounds(g.Size()>>1, 0, func(active int) {
			u.Step(func(lane int) {
				if g.GlobalID(lane)+active < n {
					accumulateVolatile(scratch, lane+active, lane)
				}
			})
		}, lockstepSync)

		u.Step(func(lane int) {
			out[g.ID()] = scratch.Load(0)
		})
	}
}

// hybridKernel reduces each group's span of in to out[groupID] under the
// fenced discipline while more than one lockstep unit's worth of lanes is
// active, then finishes fence-free on the group's first unit. The switch
// point is queried from the execution environment, so the same kernel
// adapts to whatever device runs it.
func hybridKernel(in, out []float64) simt.Kernel {
	n := len(in)
	return func(g *simt.Group, lane int) {
		scratch := g.LocalVolatile()
		local := scratch.Float64s()
		global := g.GlobalID(lane)
		width := g.SubgroupWidth()

		if global < n {
			local[lane] = in[global]
		}
		g.Barrier()

		rem := halveRounds(g.Size()>>1, width, func(active int) {
			if lane < active && global+active < n {
				local[lane] += local[lane+active]
			}
		}, g.Barrier)

		// The fence-free rounds need a single instruction stream; lane 0
		// sequences the surviving unit, every other lane is done.
		if lane != 0 {
			return
		}

		u := g.Unit()
		halveRounds(rem, 0, func(active int) {
			u.Step(func(i int) {
				if g.GlobalID(i)+active < n {
					accumulateVolatile(scratch, i+active, i)
				}
			})
		}, lockstepSync)

		out[g.ID()] = scratch.Load(0)
	}
}

// widthKernel reports the lockstep width a kernel observes. Launch it at
// the device's maximum group size so the group does not clamp the answer.
func widthKernel(out []int) simt.Kernel {
	return func(g *simt.Group, lane int) {
		if lane == 0 {
			out[g.ID()] = g.SubgroupWidth()
		}
	}
}
