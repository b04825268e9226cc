package contour

import "sync"

// onceGuard lets a pool of workers race to perform an initialization exactly
// once. The first caller runs init while holding the mutex; every other
// caller blocks until it finishes and then observes the same outcome, fully
// constructed. A failed init is never retried: one-time failures abort the
// whole run, so the memoized error is handed to every later caller.
type onceGuard struct {
	mu   sync.Mutex
	done bool
	err  error
}

func (g *onceGuard) do(init func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.done {
		g.err = init()
		g.done = true
	}
	return g.err
}
