package simt

import "sync"

// phaseBarrier is a reusable rendezvous for a fixed number of parties.
// await blocks until every party of the current phase has arrived. The
// mutex hand-off orders all writes made before an await call ahead of
// every read made after it returns, in any party.
type phaseBarrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	phase   uint64
}

func newPhaseBarrier(parties int) *phaseBarrier {
	b := &phaseBarrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *phaseBarrier) await() {
	b.mu.Lock()
	phase := b.phase
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.phase++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for phase == b.phase {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
