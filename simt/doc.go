// Package simt simulates a data-parallel compute accelerator in process.
//
// The execution model mirrors the one exposed by GPU compute runtimes:
// a dispatch launches a grid of thread-groups, each group owns a small
// shared local-memory buffer, and threads within a group are identified
// by a local index and a global index. Groups never synchronize with each
// other; combining results across groups is the host's job, by issuing
// further dispatches over the previous results.
//
// # Synchronization disciplines
//
// Within a group, exactly two ordering mechanisms exist:
//
//   - Barrier: Dispatch runs every thread of a group as its own goroutine
//     and Group.Barrier blocks until all of them arrive. The barrier's
//     lock hand-off publishes every pre-barrier write to every
//     post-barrier read, which is the local-memory-fence guarantee of
//     real hardware.
//
//   - Lockstep: DispatchLockstep carves a group into units of at most
//     Width consecutive lanes. A unit is one goroutine that issues each
//     Step to all of its lanes in ascending order, the way a vector
//     instruction stream drives its SIMD lanes. Because a single
//     instruction stream executes every lane, one round's writes are
//     ordered before the next round's reads without any fence. Units of
//     the same group run concurrently with no synchronization between
//     them, so a kernel requiring cross-unit ordering under lockstep
//     dispatch observes real data races, just as it would on hardware.
//
// # Volatile local memory
//
// Local memory is exposed both as a plain []float64 view and as a
// Volatile view whose loads and stores go through sync/atomic. The
// volatile view models the memory qualifier fence-free kernels need:
// every access reaches the backing cells, nothing is cached in a
// register across rounds, and concurrent mixed-unit access cannot tear
// a value.
//
// # Local memory contents
//
// As on real devices, local memory is uninitialized at kernel entry:
// buffers are pooled across dispatches and may contain values from
// earlier groups. Kernels must not read a cell they have not written.
//
// The dispatch layer trusts its launch configuration the way hardware
// does. Validating group sizes, buffer lengths and variant preconditions
// is the calling layer's responsibility.
package simt
