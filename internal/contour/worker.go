package contour

import "fmt"

// A stage is one step of the pipeline, executed by every worker over its own
// slice of the shared state. A barrier separates consecutive stages, so no
// stage ever observes a partially-written prerequisite.
type stage struct {
	name string
	run  func(c *Context, tid int) error
}

// Pipeline order. Later stages read what earlier stages wrote, possibly by
// other workers.
var stages = []stage{
	{"load", stageLoad},
	{"rescale", stageRescale},
	{"prepare", stagePrepare},
	{"grid", stageGrid},
	{"march", stageMarch},
	{"write", stageWrite},
}

// worker drives one pool member through the whole pipeline. On a stage
// failure the run is latched dead and the remaining work is skipped, but the
// worker keeps attending barriers so the rest of the pool is never left
// waiting on an absent party.
func (c *Context) worker(tid int) error {
	for i, st := range stages {
		if c.failure() == nil {
			if err := st.run(c, tid); err != nil {
				c.fail(fmt.Errorf("%s: %w", st.name, err))
			}
		}
		if i < len(stages)-1 {
			c.barriers[i].Wait()
		}
	}
	return c.failure()
}
