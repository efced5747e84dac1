package simt

import "sync"

// Kernel is the per-thread procedure of a threaded dispatch. It runs once
// for every lane of every group, on that lane's own goroutine.
type Kernel func(g *Group, lane int)

// StepKernel is the per-unit procedure of a lockstep dispatch. It runs once
// for every unit of every group and drives its lanes through Unit.Step.
type StepKernel func(g *Group, u *Unit)

// Dispatch launches kernel over groups thread-groups of groupSize threads
// each, with localLen float64 cells of local memory per group. Every thread
// is a goroutine and may use Group.Barrier. Dispatch returns once every
// thread has finished; all kernel writes are then visible to the caller.
//
// Launch parameters are trusted, as hardware trusts them. An impossible
// grid is rejected outright, but an ill-sized localLen or an output the
// kernel indexes out of range surfaces as a runtime panic inside the
// kernel, the simulation's analogue of device-side memory faults.
func (d *Device) Dispatch(groups, groupSize, localLen int, kernel Kernel) {
	checkLaunch(groups, groupSize, localLen, kernel == nil)

	d.forEachGroup(groups, func(groupID int) {
		lb := d.getLocal(localLen)
		g := &Group{
			id:       groupID,
			size:     groupSize,
			device:   d,
			bar:      newPhaseBarrier(groupSize),
			local:    lb,
			localLen: localLen,
		}

		var wg sync.WaitGroup
		wg.Add(groupSize)
		for lane := 0; lane < groupSize; lane++ {
			go func(lane int) {
				defer wg.Done()
				kernel(g, lane)
			}(lane)
		}
		wg.Wait()

		d.putLocal(lb)
	})
}

// DispatchLockstep launches kernel over groups thread-groups of groupSize
// lanes each, executing every group on lockstep units of at most Width
// consecutive lanes. Each unit runs the kernel once over its own lanes.
// Units of the same group run concurrently and unsynchronized: a group
// wider than one unit therefore has no ordering between its units, which
// is exactly the precondition violation fence-free kernels suffer on
// hardware when the group exceeds the lockstep width.
func (d *Device) DispatchLockstep(groups, groupSize, localLen int, kernel StepKernel) {
	checkLaunch(groups, groupSize, localLen, kernel == nil)

	width := d.width
	d.forEachGroup(groups, func(groupID int) {
		lb := d.getLocal(localLen)
		g := &Group{
			id:       groupID,
			size:     groupSize,
			device:   d,
			local:    lb,
			localLen: localLen,
		}

		if groupSize <= width {
			kernel(g, &Unit{base: 0, lanes: groupSize})
			d.putLocal(lb)
			return
		}

		units := (groupSize + width - 1) / width
		var wg sync.WaitGroup
		wg.Add(units)
		for u := 0; u < units; u++ {
			base := u * width
			lanes := width
			if base+lanes > groupSize {
				lanes = groupSize - base
			}
			go func(unit *Unit) {
				defer wg.Done()
				kernel(g, unit)
			}(&Unit{base: base, lanes: lanes})
		}
		wg.Wait()

		d.putLocal(lb)
	})
}

func checkLaunch(groups, groupSize, localLen int, nilKernel bool) {
	if nilKernel {
		panic("simt: dispatch of nil kernel")
	}
	if groups < 1 || groupSize < 1 {
		panic("simt: dispatch grid is empty")
	}
	if localLen < 0 {
		panic("simt: negative local memory length")
	}
}

// forEachGroup runs fn once per group index, keeping at most Parallelism
// groups resident at a time.
func (d *Device) forEachGroup(groups int, fn func(groupID int)) {
	workers := d.parallelism
	if workers > groups {
		workers = groups
	}
	if workers <= 1 {
		for id := 0; id < groups; id++ {
			fn(id)
		}
		return
	}

	ids := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for id := range ids {
				fn(id)
			}
		}()
	}
	for id := 0; id < groups; id++ {
		ids <- id
	}
	close(ids)
	wg.Wait()
}
