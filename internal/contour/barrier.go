package contour

import "sync"

// barrier is a counting rendezvous for a fixed number of parties. Wait
// blocks until all parties have arrived, then releases them together; every
// write made before a party's Wait is visible to every party after its Wait
// returns. The generation counter makes the barrier reusable: an arrival for
// the next round is counted against the new generation, so the reset cannot
// race a waiter that has not woken yet.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
}

func newBarrier(parties int) *barrier {
	if parties <= 0 {
		panic("barrier parties must be positive")
	}
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *barrier) Wait() {
	b.mu.Lock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
