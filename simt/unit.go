package simt

// Unit is one lockstep execution unit: up to Width consecutive lanes of a
// group driven by a single instruction stream. Because one goroutine issues
// every instruction for every lane, a Step's effects are ordered before the
// next Step without any fence; that ordering is the entire correctness
// basis of fence-free kernels.
type Unit struct {
	base  int // first group-local lane covered by the unit
	lanes int
}

// Lanes returns the number of lanes the unit drives.
func (u *Unit) Lanes() int { return u.lanes }

// Step issues one instruction across the unit: fn is called once per lane,
// in ascending lane order, with the lane's group-local index. All lanes
// complete the step before Step returns, so the following Step observes
// every write this one made.
//
// Within a single step the lanes execute in lane order, which reproduces
// vector-hardware semantics for the upward-reading access patterns
// reduction kernels use: a lane reading a higher lane's cell sees the value
// from before the current step.
func (u *Unit) Step(fn func(lane int)) {
	for i := 0; i < u.lanes; i++ {
		fn(u.base + i)
	}
}
