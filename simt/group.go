package simt

// Group is one thread-group of a dispatch. All threads of the group share
// its local memory; threads of different groups share nothing.
type Group struct {
	id     int
	size   int
	device *Device

	bar      *phaseBarrier // nil under lockstep dispatch
	local    *localBuffer
	localLen int
}

// ID returns the group's index within the dispatch grid.
func (g *Group) ID() int { return g.id }

// Size returns the number of threads in the group.
func (g *Group) Size() int { return g.size }

// Device returns the device executing the dispatch.
func (g *Group) Device() *Device { return g.device }

// GlobalID returns the dispatch-wide index of the given lane.
func (g *Group) GlobalID(lane int) int {
	return g.id*g.size + lane
}

// Barrier blocks until every thread of the group has arrived, then makes
// all earlier local-memory writes visible to all threads. It is only
// available under threaded dispatch; lockstep kernels have no blocking
// primitive and need none.
func (g *Group) Barrier() {
	if g.bar == nil {
		panic("simt: Barrier requires a threaded dispatch")
	}
	g.bar.await()
}

// Local returns the group's local memory as a plain float64 slice. The
// contents at kernel entry are unspecified.
func (g *Group) Local() []float64 {
	return g.LocalVolatile().Float64s()
}

// LocalVolatile returns the group's local memory through the volatile view.
// It aliases the cells Local returns.
func (g *Group) LocalVolatile() Volatile {
	if g.local == nil {
		return Volatile{}
	}
	return Volatile{words: g.local.words[:g.localLen]}
}

// SubgroupWidth returns the lockstep width as a kernel of this group
// observes it: the device width clamped to the group size. A group narrower
// than one unit still executes in lockstep, just on fewer lanes.
func (g *Group) SubgroupWidth() int {
	if g.device.width > g.size {
		return g.size
	}
	return g.device.width
}

// Unit returns the group's first lockstep unit, covering local lanes
// [0, SubgroupWidth()). A threaded kernel that has reduced its working set
// to one unit may hand the remaining lanes to it and let a single thread
// sequence them fence-free.
func (g *Group) Unit() *Unit {
	return &Unit{base: 0, lanes: g.SubgroupWidth()}
}
