// Package reduce sums float64 slices with data-parallel reduction kernels
// on a simulated compute device.
//
// Each kernel reduces one thread-group's span of the input to a single
// partial sum in group-shared scratch memory, halving the active lane count
// every round until lane 0 holds the group's total. A host orchestrator
// (Sum) chains passes over the partial sums until one value remains.
//
// # Synchronization disciplines
//
// The variants differ only in how rounds are ordered:
//
//   - Barrier: a group barrier separates every round. Safe at any group
//     size the device accepts.
//   - SIMD: no fences at all. Valid only when the whole group is one
//     lockstep unit, so the unit's instruction stream orders the rounds;
//     scratch is accessed through the volatile view.
//   - Hybrid: barriers while more than one unit's worth of lanes is
//     active, then the fence-free discipline for the last rounds.
//   - PointerJump: successor-chain reduction under the barrier
//     discipline, kept for comparison against the halving kernels.
//
// Pass launchers validate group sizes against the device; the kernels
// themselves trust their launch configuration the way hardware does.
package reduce
